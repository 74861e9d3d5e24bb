package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/siszum/pos-server/models"
	"github.com/siszum/pos-server/utils"
	"gorm.io/gorm"
)

type RawInventoryController struct {
	DB *gorm.DB
}

func NewRawInventoryController(db *gorm.DB) *RawInventoryController {
	return &RawInventoryController{DB: db}
}

// GetAllRawItems -> stok daging mentah, urut nama.
func (rc *RawInventoryController) GetAllRawItems(c *gin.Context) {
	var items []models.RawItem
	if err := rc.DB.Order("name").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Raw inventory retrieved successfully", items)
}

// CreateRawItem -> nama sudah ada berarti tambah stok + update harga beli.
func (rc *RawInventoryController) CreateRawItem(c *gin.Context) {
	var req struct {
		Name        string  `json:"name" binding:"required"`
		BuyingPrice float64 `json:"buying_price" binding:"required,gt=0"`
		QuantityKg  float64 `json:"quantity_kg" binding:"required,gt=0"`
		Notes       *string `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("name, buying_price, and quantity_kg are required"))
		return
	}

	name := strings.TrimSpace(req.Name)

	var existing models.RawItem
	err := rc.DB.Where("LOWER(name) = ?", strings.ToLower(name)).First(&existing).Error
	if err == nil {
		existing.QuantityKg += req.QuantityKg
		existing.BuyingPrice = req.BuyingPrice
		if req.Notes != nil {
			existing.Notes = req.Notes
		}
		if err := rc.DB.Save(&existing).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "Raw item stock updated successfully", existing)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	item := models.RawItem{
		Name:        name,
		BuyingPrice: req.BuyingPrice,
		QuantityKg:  req.QuantityKg,
		Notes:       req.Notes,
	}
	if err := rc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Raw item added: %s (%.2f kg)", item.Name, item.QuantityKg)
	utils.RespondJSON(c, http.StatusCreated, "Raw item added successfully", item)
}

// UpdateRawItem -> partial update; rename ke nama yang sudah dipakai ditolak.
func (rc *RawInventoryController) UpdateRawItem(c *gin.Context) {
	var item models.RawItem
	if err := rc.DB.First(&item, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("raw item not found"))
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		BuyingPrice *float64 `json:"buying_price" binding:"omitempty,gt=0"`
		QuantityKg  *float64 `json:"quantity_kg" binding:"omitempty,gte=0"`
		Notes       *string  `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		var count int64
		rc.DB.Model(&models.RawItem{}).
			Where("LOWER(name) = ? AND id != ?", strings.ToLower(name), item.ID).
			Count(&count)
		if count > 0 {
			utils.RespondError(c, http.StatusConflict, errors.New("raw item with this name already exists"))
			return
		}
		item.Name = name
	}
	if req.BuyingPrice != nil {
		item.BuyingPrice = *req.BuyingPrice
	}
	if req.QuantityKg != nil {
		item.QuantityKg = *req.QuantityKg
	}
	if req.Notes != nil {
		item.Notes = req.Notes
	}

	if err := rc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Raw item updated successfully", item)
}

func (rc *RawInventoryController) DeleteRawItem(c *gin.Context) {
	var item models.RawItem
	if err := rc.DB.First(&item, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("raw item not found"))
		return
	}

	if err := rc.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Raw item deleted successfully", nil)
}
