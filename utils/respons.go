package utils

import (
	"github.com/gin-gonic/gin"
)

// Pagination adalah metadata halaman yang menempel di setiap list response.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

// APIResponse adalah envelope seragam untuk seluruh endpoint.
type APIResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, APIResponse{
		Success: code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

// RespondPage mengirim satu halaman hasil beserta metadata pagination.
func RespondPage(c *gin.Context, code int, message string, data interface{}, p Pagination) {
	c.JSON(code, APIResponse{
		Success:    code >= 200 && code < 300,
		Message:    message,
		Data:       data,
		Pagination: &p,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, APIResponse{
		Success: false,
		Message: err.Error(),
		Error:   err.Error(),
	})
}
