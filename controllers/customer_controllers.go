package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/siszum/pos-server/models"
	"github.com/siszum/pos-server/utils"
	"gorm.io/gorm"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// GetAllCustomers -> list dengan pagination, search substring, dan filter status.
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	params := utils.ParsePageParams(c, 5)
	search := c.Query("search")
	status := c.DefaultQuery("status", "all")

	query := cc.DB.Model(&models.Customer{})

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(customer_code) LIKE ? OR LOWER(phone) LIKE ?",
			pattern, pattern, pattern, pattern, pattern)
	}

	if status != "all" {
		query = query.Where("is_active = ?", status == "active")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var customers []models.Customer
	if err := query.
		Order("created_at DESC").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&customers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondPage(c, http.StatusOK, "Customers retrieved successfully", customers,
		utils.BuildPagination(params, total))
}

// GetCustomerByID -> detail satu customer.
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	var customer models.Customer
	if err := cc.DB.First(&customer, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("customer not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer retrieved successfully", customer)
}

// CreateCustomer -> generate customer_code berurutan (CUST0001, ...).
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req struct {
		FirstName   string  `json:"first_name" binding:"required"`
		LastName    string  `json:"last_name" binding:"required"`
		Email       *string `json:"email"`
		Phone       *string `json:"phone"`
		DateOfBirth *string `json:"date_of_birth"`
		Address     *string `json:"address"`
		City        *string `json:"city"`
		Country     *string `json:"country"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("first name and last name are required"))
		return
	}

	if req.Email != nil && *req.Email != "" {
		var count int64
		cc.DB.Model(&models.Customer{}).Where("email = ?", *req.Email).Count(&count)
		if count > 0 {
			utils.RespondError(c, http.StatusConflict, errors.New("email already exists"))
			return
		}
	} else {
		req.Email = nil
	}

	var customerCount int64
	cc.DB.Model(&models.Customer{}).Count(&customerCount)

	customer := models.Customer{
		CustomerCode: fmt.Sprintf("CUST%04d", customerCount+1),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		DateOfBirth:  req.DateOfBirth,
		Address:      req.Address,
		City:         req.City,
		Country:      req.Country,
		IsActive:     true,
	}

	if err := cc.DB.Create(&customer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Customer created: %s (%s %s)", customer.CustomerCode, customer.FirstName, customer.LastName)
	utils.RespondJSON(c, http.StatusCreated, "Customer created successfully", gin.H{
		"id":            customer.ID,
		"customer_code": customer.CustomerCode,
	})
}

// UpdateCustomer -> full update; email duplikat ditolak.
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := cc.DB.First(&customer, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("customer not found"))
		return
	}

	var req struct {
		FirstName   string  `json:"first_name" binding:"required"`
		LastName    string  `json:"last_name" binding:"required"`
		Email       *string `json:"email"`
		Phone       *string `json:"phone"`
		DateOfBirth *string `json:"date_of_birth"`
		Address     *string `json:"address"`
		City        *string `json:"city"`
		Country     *string `json:"country"`
		IsActive    *bool   `json:"is_active"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Email != nil && *req.Email != "" {
		var count int64
		cc.DB.Model(&models.Customer{}).
			Where("email = ? AND id != ?", *req.Email, customer.ID).
			Count(&count)
		if count > 0 {
			utils.RespondError(c, http.StatusConflict, errors.New("email already exists"))
			return
		}
	} else {
		req.Email = nil
	}

	customer.FirstName = req.FirstName
	customer.LastName = req.LastName
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.DateOfBirth = req.DateOfBirth
	customer.Address = req.Address
	customer.City = req.City
	customer.Country = req.Country
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}

	if err := cc.DB.Save(&customer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer updated successfully", customer)
}

// DeleteCustomer -> ditolak selama masih punya order atau reservasi.
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	var customer models.Customer
	if err := cc.DB.First(&customer, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("customer not found"))
		return
	}

	var orderCount, reservationCount int64
	cc.DB.Model(&models.Order{}).Where("customer_id = ?", customer.ID).Count(&orderCount)
	cc.DB.Model(&models.Reservation{}).Where("customer_name = ?", customer.FirstName+" "+customer.LastName).Count(&reservationCount)

	if orderCount > 0 || reservationCount > 0 {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("cannot delete customer with existing orders or reservations"))
		return
	}

	if err := cc.DB.Delete(&customer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer deleted successfully", nil)
}

// GetCustomerStats -> ringkasan untuk halaman customers.
func (cc *CustomerController) GetCustomerStats(c *gin.Context) {
	var total, active, newThisMonth, withOrders int64

	cc.DB.Model(&models.Customer{}).Count(&total)
	cc.DB.Model(&models.Customer{}).Where("is_active = ?", true).Count(&active)

	monthStart := time.Now().AddDate(0, 0, 1-time.Now().Day())
	monthStart = time.Date(monthStart.Year(), monthStart.Month(), monthStart.Day(), 0, 0, 0, 0, monthStart.Location())
	cc.DB.Model(&models.Customer{}).Where("created_at >= ?", monthStart).Count(&newThisMonth)

	cc.DB.Model(&models.Order{}).
		Where("customer_id IS NOT NULL").
		Distinct("customer_id").
		Count(&withOrders)

	utils.RespondJSON(c, http.StatusOK, "Customer statistics retrieved successfully", gin.H{
		"total_customers":       total,
		"active_customers":      active,
		"new_this_month":        newThisMonth,
		"customers_with_orders": withOrders,
	})
}
