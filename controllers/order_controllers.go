package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/siszum/pos-server/models"
	"github.com/siszum/pos-server/realtime"
	"github.com/siszum/pos-server/utils"
	"gorm.io/gorm"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

type orderItemRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

// GetAllOrders -> pagination + search order_code/customer_name + filter status.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	params := utils.ParsePageParams(c, 10)
	search := c.Query("search")
	status := c.DefaultQuery("status", "all")

	query := oc.DB.Model(&models.Order{})

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(order_code) LIKE ? OR LOWER(customer_name) LIKE ?", pattern, pattern)
	}
	if status != "all" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var orders []models.Order
	if err := query.
		Preload("Table").
		Preload("Customer").
		Preload("OrderItems.MenuItem").
		Order("created_at DESC").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondPage(c, http.StatusOK, "Orders retrieved successfully", orders,
		utils.BuildPagination(params, total))
}

// GetOrderStats -> ringkasan untuk header halaman orders.
func (oc *OrderController) GetOrderStats(c *gin.Context) {
	var total, pending, preparing, completed, cancelled int64
	var revenueToday float64

	oc.DB.Model(&models.Order{}).Count(&total)
	oc.DB.Model(&models.Order{}).Where("status = ?", models.OrderPending).Count(&pending)
	oc.DB.Model(&models.Order{}).Where("status = ?", models.OrderPreparing).Count(&preparing)
	oc.DB.Model(&models.Order{}).Where("status = ?", models.OrderCompleted).Count(&completed)
	oc.DB.Model(&models.Order{}).Where("status = ?", models.OrderCancelled).Count(&cancelled)

	today := time.Now().Format("2006-01-02")
	oc.DB.Model(&models.Transaction{}).
		Where("payment_date = ? AND status = ?", today, "completed").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&revenueToday)

	utils.RespondJSON(c, http.StatusOK, "Order statistics retrieved successfully", gin.H{
		"total_orders":     total,
		"pending_orders":   pending,
		"preparing_orders": preparing,
		"completed_orders": completed,
		"cancelled_orders": cancelled,
		"revenue_today":    revenueToday,
	})
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	var order models.Order
	if err := oc.DB.
		Preload("Table").
		Preload("Customer").
		Preload("OrderItems.MenuItem").
		First(&order, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order retrieved successfully", order)
}

// GetOrdersByCustomer -> riwayat order satu customer, terbaru dulu.
func (oc *OrderController) GetOrdersByCustomer(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.
		Preload("OrderItems.MenuItem").
		Where("customer_id = ?", c.Param("id")).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer orders retrieved successfully", orders)
}

// CreateOrder -> satu transaksi DB: order + item + potong stok; kalau status
// langsung completed sekalian buat transaction dan receipt.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		CustomerID     *uint              `json:"customer_id"`
		CustomerName   string             `json:"customer_name" binding:"required"`
		TableID        *uint              `json:"table_id"`
		OrderType      string             `json:"order_type"`
		Items          []orderItemRequest `json:"items" binding:"required,min=1,dive"`
		DiscountAmount float64            `json:"discount_amount"`
		TaxAmount      float64            `json:"tax_amount"`
		Status         string             `json:"status"`
		PaymentMethod  *string            `json:"payment_method"`
		Notes          *string            `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.OrderType == "" {
		req.OrderType = "dine_in"
	}
	if req.Status == "" {
		req.Status = models.OrderPending
	}
	if req.Status != models.OrderPending && req.Status != models.OrderPreparing && req.Status != models.OrderCompleted {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order status"))
		return
	}
	if req.Status == models.OrderCompleted && req.PaymentMethod == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("payment_method is required for completed orders"))
		return
	}

	adminID := c.GetUint("admin_id")
	var created models.Order

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		orderCode, err := nextOrderCode(tx)
		if err != nil {
			return err
		}

		var subtotal float64
		orderItems := make([]models.OrderItem, 0, len(req.Items))

		for _, line := range req.Items {
			var menuItem models.MenuItem
			if err := tx.First(&menuItem, line.MenuItemID).Error; err != nil {
				return fmt.Errorf("menu item %d not found", line.MenuItemID)
			}

			if !menuItem.IsUnlimited {
				if menuItem.QuantityInStock < line.Quantity {
					return fmt.Errorf("insufficient stock for %s", menuItem.Name)
				}
				result := tx.Model(&models.MenuItem{}).
					Where("id = ? AND quantity_in_stock >= ?", menuItem.ID, line.Quantity).
					Update("quantity_in_stock", gorm.Expr("quantity_in_stock - ?", line.Quantity))
				if result.Error != nil {
					return result.Error
				}
				if result.RowsAffected == 0 {
					return fmt.Errorf("insufficient stock for %s", menuItem.Name)
				}
			}

			lineTotal := menuItem.SellingPrice * float64(line.Quantity)
			subtotal += lineTotal
			orderItems = append(orderItems, models.OrderItem{
				MenuItemID: menuItem.ID,
				Quantity:   line.Quantity,
				UnitPrice:  menuItem.SellingPrice,
				TotalPrice: lineTotal,
			})
		}

		totalAmount := subtotal - req.DiscountAmount + req.TaxAmount
		if totalAmount < 0 {
			totalAmount = 0
		}

		order := models.Order{
			OrderCode:      orderCode,
			CustomerID:     req.CustomerID,
			CustomerName:   req.CustomerName,
			TableID:        req.TableID,
			OrderType:      req.OrderType,
			Subtotal:       subtotal,
			DiscountAmount: req.DiscountAmount,
			TaxAmount:      req.TaxAmount,
			TotalAmount:    totalAmount,
			Status:         req.Status,
			PaymentStatus:  "pending",
			Notes:          req.Notes,
			CreatedBy:      adminID,
		}
		if req.Status == models.OrderCompleted {
			now := time.Now()
			order.CompletedAt = &now
			order.PaymentStatus = "paid"
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for i := range orderItems {
			orderItems[i].OrderID = order.ID
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return err
		}

		if req.Status == models.OrderCompleted {
			if err := recordPayment(tx, &order, *req.PaymentMethod, adminID); err != nil {
				return err
			}
		}

		order.OrderItems = orderItems
		created = order
		return nil
	})

	if err != nil {
		status := http.StatusBadRequest
		if !strings.Contains(err.Error(), "not found") && !strings.Contains(err.Error(), "insufficient") {
			status = http.StatusInternalServerError
		}
		utils.RespondError(c, status, err)
		return
	}

	realtime.Broadcast(realtime.EventOrderUpdate, created)
	utils.InfoLogger.Printf("Order created: %s (%s, total %.2f)", created.OrderCode, created.Status, created.TotalAmount)
	utils.RespondJSON(c, http.StatusCreated, "Order created successfully", gin.H{
		"id":         created.ID,
		"order_code": created.OrderCode,
	})
}

// UpdateOrder -> partial update; transisi ke completed mencatat pembayaran.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	var order models.Order
	if err := oc.DB.First(&order, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	var req struct {
		Status        *string `json:"status"`
		PaymentMethod *string `json:"payment_method"`
		Notes         *string `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Status != nil {
		switch *req.Status {
		case models.OrderPending, models.OrderPreparing, models.OrderCompleted, models.OrderCancelled:
		default:
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order status"))
			return
		}
	}

	adminID := c.GetUint("admin_id")

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if req.Notes != nil {
			order.Notes = req.Notes
		}

		if req.Status != nil && *req.Status != order.Status {
			if *req.Status == models.OrderCompleted {
				if req.PaymentMethod == nil {
					return errors.New("payment_method is required to complete an order")
				}
				now := time.Now()
				order.CompletedAt = &now
				order.PaymentStatus = "paid"
				order.Status = models.OrderCompleted
				if err := recordPayment(tx, &order, *req.PaymentMethod, adminID); err != nil {
					return err
				}
			} else {
				order.Status = *req.Status
			}
		}

		return tx.Save(&order).Error
	})

	if err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "required") {
			status = http.StatusBadRequest
		}
		utils.RespondError(c, status, err)
		return
	}

	realtime.Broadcast(realtime.EventOrderUpdate, order)
	utils.RespondJSON(c, http.StatusOK, "Order updated successfully", order)
}

// DeleteOrder -> hanya order pending/cancelled; stok dikembalikan.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	var order models.Order
	if err := oc.DB.Preload("OrderItems").First(&order, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	if order.Status != models.OrderPending && order.Status != models.OrderCancelled {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("only pending or cancelled orders can be deleted"))
		return
	}

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range order.OrderItems {
			if err := tx.Model(&models.MenuItem{}).
				Where("id = ? AND is_unlimited = ?", item.MenuItemID, false).
				Update("quantity_in_stock", gorm.Expr("quantity_in_stock + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})

	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order deleted successfully", nil)
}

// nextOrderCode menghasilkan kode ORDyyyymmddNNN, counter reset per hari.
func nextOrderCode(tx *gorm.DB) (string, error) {
	prefix := "ORD" + time.Now().Format("20060102")

	var count int64
	if err := tx.Model(&models.Order{}).
		Where("order_code LIKE ?", prefix+"%").
		Count(&count).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%03d", prefix, count+1), nil
}

// recordPayment membuat transaction + receipt untuk order yang dibayar.
func recordPayment(tx *gorm.DB, order *models.Order, paymentMethod string, adminID uint) error {
	switch paymentMethod {
	case models.PaymentCash, models.PaymentGcash, models.PaymentCard:
	default:
		return errors.New("invalid payment_method")
	}

	now := time.Now()
	transaction := models.Transaction{
		TransactionCode: fmt.Sprintf("TXN%d", now.UnixMilli()),
		OrderID:         order.ID,
		CustomerID:      order.CustomerID,
		PaymentMethod:   paymentMethod,
		Amount:          order.TotalAmount,
		Status:          "completed",
		ReferenceNumber: uuid.New().String(),
		PaymentDate:     now.Format("2006-01-02"),
		PaymentTime:     now.Format("15:04:05"),
		ProcessedBy:     adminID,
	}
	if err := tx.Create(&transaction).Error; err != nil {
		return err
	}

	receipt := models.Receipt{
		ReceiptNumber:  fmt.Sprintf("RCP%d", now.UnixMilli()),
		OrderID:        order.ID,
		TransactionID:  transaction.ID,
		CustomerName:   order.CustomerName,
		Subtotal:       order.Subtotal,
		DiscountAmount: order.DiscountAmount,
		TaxAmount:      order.TaxAmount,
		TotalAmount:    order.TotalAmount,
	}
	return tx.Create(&receipt).Error
}
