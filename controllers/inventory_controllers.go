package controllers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/siszum/pos-server/config"
	"github.com/siszum/pos-server/models"
	"github.com/siszum/pos-server/utils"
	"gorm.io/gorm"
)

type InventoryController struct {
	DB *gorm.DB
}

func NewInventoryController(db *gorm.DB) *InventoryController {
	return &InventoryController{DB: db}
}

// GetAllItems -> seluruh menu item dengan kategorinya, urut sort_order kategori.
func (ic *InventoryController) GetAllItems(c *gin.Context) {
	var items []models.MenuItem
	if err := ic.DB.
		Preload("Category").
		Joins("LEFT JOIN menu_categories ON menu_categories.id = menu_items.category_id").
		Order("menu_categories.sort_order, menu_items.name").
		Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Inventory items retrieved successfully", items)
}

// GetCategories -> kategori aktif, urut sort_order.
func (ic *InventoryController) GetCategories(c *gin.Context) {
	var categories []models.MenuCategory
	if err := ic.DB.
		Where("is_active = ?", true).
		Order("sort_order").
		Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Categories retrieved successfully", categories)
}

// GetInventoryStats -> ringkasan stok untuk halaman inventory.
func (ic *InventoryController) GetInventoryStats(c *gin.Context) {
	var totalItems, lowStock, outOfStock int64
	var totalValue float64

	ic.DB.Model(&models.MenuItem{}).Count(&totalItems)
	ic.DB.Model(&models.MenuItem{}).
		Where("quantity_in_stock <= ? AND is_unlimited = ?", 10, false).
		Count(&lowStock)
	ic.DB.Model(&models.MenuItem{}).
		Where("quantity_in_stock = 0 AND is_unlimited = ?", false).
		Count(&outOfStock)
	ic.DB.Model(&models.Order{}).
		Where("status = ?", models.OrderCompleted).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&totalValue)

	utils.RespondJSON(c, http.StatusOK, "Inventory statistics retrieved successfully", gin.H{
		"total_items":  totalItems,
		"total_value":  totalValue,
		"low_stock":    lowStock,
		"out_of_stock": outOfStock,
	})
}

// CreateItem -> multipart form dengan optional image upload.
func (ic *InventoryController) CreateItem(c *gin.Context) {
	name := c.PostForm("name")
	categoryID, _ := strconv.Atoi(c.PostForm("category_id"))
	sellingPriceRaw := c.PostForm("selling_price")

	if name == "" || categoryID == 0 || sellingPriceRaw == "" {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("missing required fields: name, category_id, and selling_price are required"))
		return
	}

	sellingPrice, err := strconv.ParseFloat(sellingPriceRaw, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("selling_price must be a number"))
		return
	}

	productCode := c.PostForm("product_code")
	if productCode == "" {
		productCode, err = ic.generateProductCode()
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	quantity, _ := strconv.Atoi(c.PostForm("quantity_in_stock"))

	var purchasePrice *float64
	if raw := c.PostForm("purchase_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			purchasePrice = &v
		}
	}
	purchaseValue := 0.0
	if purchasePrice != nil {
		purchaseValue = *purchasePrice * float64(quantity)
	}

	item := models.MenuItem{
		ProductCode:     productCode,
		Name:            name,
		CategoryID:      uint(categoryID),
		SellingPrice:    sellingPrice,
		PurchasePrice:   purchasePrice,
		PurchaseValue:   purchaseValue,
		QuantityInStock: quantity,
		UnitType:        defaultString(c.PostForm("unit_type"), "piece"),
		Availability:    defaultString(c.PostForm("availability"), "available"),
		IsUnlimited:     c.PostForm("is_unlimited") == "true",
		IsPremium:       c.PostForm("is_premium") == "true",
	}
	if desc := c.PostForm("description"); desc != "" {
		item.Description = &desc
	}

	if url, err := ic.saveImage(c); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	} else if url != "" {
		item.ImageURL = &url
	}

	if err := ic.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Inventory item added: %s (%s)", item.Name, item.ProductCode)
	utils.RespondJSON(c, http.StatusCreated, "Inventory item added successfully", gin.H{
		"id": item.ID,
	})
}

// UpdateItem -> field yang tidak dikirim dipertahankan; gambar lama dihapus
// saat diganti.
func (ic *InventoryController) UpdateItem(c *gin.Context) {
	var item models.MenuItem
	if err := ic.DB.First(&item, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("inventory item not found"))
		return
	}

	if v := c.PostForm("product_code"); v != "" {
		item.ProductCode = v
	}
	if v := c.PostForm("name"); v != "" {
		item.Name = v
	}
	if v := c.PostForm("description"); v != "" {
		item.Description = &v
	}
	if v := c.PostForm("category_id"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			item.CategoryID = uint(id)
		}
	}
	if v := c.PostForm("selling_price"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			item.SellingPrice = price
		}
	}
	if v := c.PostForm("purchase_price"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			item.PurchasePrice = &price
		}
	}
	if v := c.PostForm("quantity_in_stock"); v != "" {
		if qty, err := strconv.Atoi(v); err == nil {
			item.QuantityInStock = qty
		}
	}
	if v := c.PostForm("purchase_value"); v != "" {
		if val, err := strconv.ParseFloat(v, 64); err == nil {
			item.PurchaseValue = val
		}
	} else if item.PurchasePrice != nil {
		item.PurchaseValue = *item.PurchasePrice * float64(item.QuantityInStock)
	}
	if v := c.PostForm("unit_type"); v != "" {
		item.UnitType = v
	}
	if v := c.PostForm("availability"); v != "" {
		item.Availability = v
	}
	if v := c.PostForm("is_unlimited"); v != "" {
		item.IsUnlimited = v == "true"
	}
	if v := c.PostForm("is_premium"); v != "" {
		item.IsPremium = v == "true"
	}

	if url, err := ic.saveImage(c); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	} else if url != "" {
		ic.removeStoredImage(item.ImageURL)
		item.ImageURL = &url
	}

	if err := ic.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Inventory item updated successfully", item)
}

// DeleteItem -> hapus item beserta file gambarnya.
func (ic *InventoryController) DeleteItem(c *gin.Context) {
	var item models.MenuItem
	if err := ic.DB.First(&item, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("inventory item not found"))
		return
	}

	ic.removeStoredImage(item.ImageURL)

	if err := ic.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Inventory item deleted successfully", nil)
}

// generateProductCode membuat SKU unik dari alphabet tanpa karakter ambigu.
func (ic *InventoryController) generateProductCode() (string, error) {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	for attempts := 0; attempts < 5; attempts++ {
		buf := make([]byte, 6)
		for i := range buf {
			buf[i] = alphabet[rand.Intn(len(alphabet))]
		}
		code := "SKU-" + string(buf)

		var count int64
		if err := ic.DB.Model(&models.MenuItem{}).Where("product_code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}

	// fallback pakai timestamp
	return fmt.Sprintf("SKU-%d", time.Now().UnixMilli()), nil
}

// saveImage menyimpan upload "image" ke disk lokal; "" jika tidak ada file.
func (ic *InventoryController) saveImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	if file.Size > config.App.MaxUploadBytes {
		return "", errors.New("image exceeds maximum upload size")
	}

	contentType := file.Header.Get("Content-Type")
	if len(contentType) < 6 || contentType[:6] != "image/" {
		return "", errors.New("only image files are allowed")
	}

	dir := filepath.Join(config.App.UploadDir, "menu_images")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	filename := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}

	return "/uploads/menu_images/" + filename, nil
}

func (ic *InventoryController) removeStoredImage(url *string) {
	if url == nil || *url == "" {
		return
	}
	localPath := filepath.Join(config.App.UploadDir, "menu_images", filepath.Base(*url))
	if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
		utils.ErrorLogger.Printf("Error deleting image %s: %v", localPath, err)
	}
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
