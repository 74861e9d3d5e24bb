package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/siszum/pos-server/models"
	"github.com/siszum/pos-server/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Login -> tukar email+password dengan bearer token.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var admin models.Admin
	if err := ac.DB.Where("email = ? AND is_active = ?", input.Email, true).First(&admin).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	now := time.Now()
	ac.DB.Model(&admin).Update("last_login", now)
	admin.LastLogin = &now

	token, err := utils.GenerateToken(admin.ID, admin.Email, admin.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Login successful: %s (role=%s)", admin.Email, admin.Role)
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  admin,
	})
}

// Me -> resolve token ke profil admin saat ini.
func (ac *AuthController) Me(c *gin.Context) {
	adminInterface, exists := c.Get("admin")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user not authenticated"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "User retrieved successfully", adminInterface)
}

// UpdateProfile -> partial update; field yang tidak dikirim dibiarkan.
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	adminID := c.GetUint("admin_id")

	var req struct {
		FirstName   *string `json:"first_name"`
		LastName    *string `json:"last_name"`
		Phone       *string `json:"phone"`
		DateOfBirth *string `json:"date_of_birth"`
		City        *string `json:"city"`
		Country     *string `json:"country"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.DateOfBirth != nil {
		updates["date_of_birth"] = *req.DateOfBirth
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}

	if len(updates) > 0 {
		if err := ac.DB.Model(&models.Admin{}).Where("id = ?", adminID).Updates(updates).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	var admin models.Admin
	if err := ac.DB.First(&admin, adminID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile updated successfully", admin)
}

// Logout -> blacklist token sampai kadaluarsa.
func (ac *AuthController) Logout(c *gin.Context) {
	token := c.GetString("token")
	if token != "" {
		utils.BlacklistToken(token)
	}
	utils.RespondJSON(c, http.StatusOK, "Logout successful", nil)
}
