package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/siszum/pos-server/models"
	"github.com/siszum/pos-server/realtime"
	"github.com/siszum/pos-server/utils"
	"gorm.io/gorm"
)

type RefillController struct {
	DB *gorm.DB
}

func NewRefillController(db *gorm.DB) *RefillController {
	return &RefillController{DB: db}
}

// GetAllRefills -> list request refill dengan pagination + ringkasan status.
func (rc *RefillController) GetAllRefills(c *gin.Context) {
	params := utils.ParsePageParams(c, 10)

	query := rc.DB.Model(&models.RefillRequest{})
	if status := c.Query("status"); status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var refills []models.RefillRequest
	if err := query.
		Preload("Table").
		Preload("Customer").
		Order("requested_at DESC").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&refills).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var pending, inProgress, completedToday int64
	rc.DB.Model(&models.RefillRequest{}).Where("status = ?", models.RefillPending).Count(&pending)
	rc.DB.Model(&models.RefillRequest{}).Where("status = ?", models.RefillInProgress).Count(&inProgress)

	dayStart := utils.StartOfDay(time.Now())
	rc.DB.Model(&models.RefillRequest{}).
		Where("status = ? AND completed_at >= ?", models.RefillCompleted, dayStart).
		Count(&completedToday)

	utils.RespondJSON(c, http.StatusOK, "Refill requests retrieved successfully", gin.H{
		"refills":    refills,
		"pagination": utils.BuildPagination(params, total),
		"stats": gin.H{
			"pending":         pending,
			"in_progress":     inProgress,
			"completed_today": completedToday,
		},
	})
}

// CreateRefill -> request refill baru dari meja.
func (rc *RefillController) CreateRefill(c *gin.Context) {
	var req struct {
		TableID     uint    `json:"table_id" binding:"required"`
		CustomerID  *uint   `json:"customer_id"`
		RequestType string  `json:"request_type" binding:"required"`
		Price       float64 `json:"price"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.RestaurantTable
	if err := rc.DB.First(&table, req.TableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	}

	if req.Price <= 0 {
		req.Price = 200 // default harga refill unlimited
	}

	refill := models.RefillRequest{
		TableCode:   table.TableCode,
		TableID:     table.ID,
		CustomerID:  req.CustomerID,
		RequestType: req.RequestType,
		Price:       req.Price,
		Status:      models.RefillPending,
		RequestedAt: time.Now(),
	}

	if err := rc.DB.Create(&refill).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	realtime.Broadcast(realtime.EventRefillUpdate, refill)
	utils.InfoLogger.Printf("Refill requested: table %s (%s)", refill.TableCode, refill.RequestType)
	utils.RespondJSON(c, http.StatusCreated, "Refill request created successfully", gin.H{
		"id": refill.ID,
	})
}

// UpdateRefillStatus -> transisi status; completed mengisi completed_at dan
// processed_by.
func (rc *RefillController) UpdateRefillStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.ValidRefillStatus(body.Status) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid status"))
		return
	}

	var refill models.RefillRequest
	if err := rc.DB.First(&refill, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("refill request not found"))
		return
	}

	refill.Status = body.Status
	if body.Status == models.RefillCompleted {
		now := time.Now()
		refill.CompletedAt = &now
		adminID := c.GetUint("admin_id")
		refill.ProcessedBy = &adminID
	} else {
		refill.CompletedAt = nil
	}

	if err := rc.DB.Save(&refill).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	realtime.Broadcast(realtime.EventRefillUpdate, refill)
	utils.RespondJSON(c, http.StatusOK, "Refill status updated successfully", refill)
}
