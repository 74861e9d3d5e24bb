package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/siszum/pos-server/models"
	"github.com/siszum/pos-server/realtime"
	"github.com/siszum/pos-server/utils"
	"gorm.io/gorm"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// GetAllTables -> seluruh meja, optional filter status, urut nomor meja.
func (tc *TableController) GetAllTables(c *gin.Context) {
	query := tc.DB.Model(&models.RestaurantTable{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var tables []models.RestaurantTable
	if err := query.Order("table_number").Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Tables retrieved successfully", tables)
}

// GetTableByID -> detail satu meja.
func (tc *TableController) GetTableByID(c *gin.Context) {
	var table models.RestaurantTable
	if err := tc.DB.First(&table, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Table retrieved successfully", table)
}

// UpdateTableStatus -> validasi enum lalu update status meja.
func (tc *TableController) UpdateTableStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.ValidTableStatus(body.Status) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid status"))
		return
	}

	var table models.RestaurantTable
	if err := tc.DB.First(&table, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	}

	table.Status = body.Status
	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	realtime.Broadcast(realtime.EventTableUpdate, table)
	utils.InfoLogger.Printf("Table %d status changed to %s", table.ID, table.Status)
	utils.RespondJSON(c, http.StatusOK, "Table status updated successfully", table)
}
