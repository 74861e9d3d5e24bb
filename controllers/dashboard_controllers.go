package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/siszum/pos-server/models"
	"github.com/siszum/pos-server/services"
	"github.com/siszum/pos-server/utils"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB      *gorm.DB
	Timers  *services.TimerService
	Reports *services.ReportService
}

func NewDashboardController(db *gorm.DB, timers *services.TimerService) *DashboardController {
	return &DashboardController{DB: db, Timers: timers, Reports: services.NewReportService(db)}
}

// GetDashboardStats -> angka-angka utama di halaman depan admin.
func (dc *DashboardController) GetDashboardStats(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	var revenueToday, reservationFeesToday float64
	dc.DB.Model(&models.Transaction{}).
		Where("status = ? AND payment_date = ?", "completed", today).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&revenueToday)
	dc.DB.Model(&models.Reservation{}).
		Where("reservation_date = ? AND payment_status = ?", today, "paid").
		Select("COALESCE(SUM(payment_amount), 0)").
		Scan(&reservationFeesToday)

	var ordersToday, pendingOrders int64
	dayStart := utils.StartOfDay(time.Now())
	dc.DB.Model(&models.Order{}).Where("created_at >= ?", dayStart).Count(&ordersToday)
	dc.DB.Model(&models.Order{}).
		Where("status IN ?", []string{models.OrderPending, models.OrderPreparing}).
		Count(&pendingOrders)

	var reservationsToday int64
	dc.DB.Model(&models.Reservation{}).
		Where("reservation_date = ? AND status != ?", today, models.ReservationCancelled).
		Count(&reservationsToday)

	var totalTables, occupiedTables, availableTables int64
	dc.DB.Model(&models.RestaurantTable{}).Count(&totalTables)
	dc.DB.Model(&models.RestaurantTable{}).Where("status = ?", models.TableOccupied).Count(&occupiedTables)
	dc.DB.Model(&models.RestaurantTable{}).Where("status = ?", models.TableAvailable).Count(&availableTables)

	var activeTimers, pendingRefills int64
	dc.DB.Model(&models.CustomerTimer{}).Where("is_active = ?", true).Count(&activeTimers)
	dc.DB.Model(&models.RefillRequest{}).Where("status = ?", models.RefillPending).Count(&pendingRefills)

	utils.RespondJSON(c, http.StatusOK, "Dashboard statistics retrieved successfully", gin.H{
		"revenue_today":      revenueToday + reservationFeesToday,
		"orders_today":       ordersToday,
		"pending_orders":     pendingOrders,
		"reservations_today": reservationsToday,
		"tables": gin.H{
			"total":     totalTables,
			"occupied":  occupiedTables,
			"available": availableTables,
		},
		"active_timers":   activeTimers,
		"pending_refills": pendingRefills,
	})
}

// GetUpcomingGuests -> reservasi hari ini ke depan yang belum selesai.
func (dc *DashboardController) GetUpcomingGuests(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	var reservations []models.Reservation
	if err := dc.DB.
		Preload("Table").
		Where("reservation_date >= ? AND status IN ?", today,
			[]string{models.ReservationPending, models.ReservationConfirmed}).
		Order("reservation_date, reservation_time").
		Limit(10).
		Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Upcoming guests retrieved successfully", reservations)
}

// GetPendingOrders -> order yang masih di dapur.
func (dc *DashboardController) GetPendingOrders(c *gin.Context) {
	var orders []models.Order
	if err := dc.DB.
		Preload("Table").
		Preload("OrderItems.MenuItem").
		Where("status IN ?", []string{models.OrderPending, models.OrderPreparing}).
		Order("created_at").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Pending orders retrieved successfully", orders)
}

// GetTopProducts -> menu terlaris berdasarkan quantity terjual.
func (dc *DashboardController) GetTopProducts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 || limit > 20 {
		limit = 5
	}

	type topProduct struct {
		MenuItemID   uint    `json:"menu_item_id"`
		Name         string  `json:"name"`
		TotalSold    int64   `json:"total_sold"`
		TotalRevenue float64 `json:"total_revenue"`
	}

	var products []topProduct
	if err := dc.DB.Model(&models.OrderItem{}).
		Select("order_items.menu_item_id, menu_items.name, SUM(order_items.quantity) AS total_sold, SUM(order_items.total_price) AS total_revenue").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Joins("JOIN orders ON orders.id = order_items.order_id AND orders.status = ?", models.OrderCompleted).
		Group("order_items.menu_item_id, menu_items.name").
		Order("total_sold DESC").
		Limit(limit).
		Scan(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Top products retrieved successfully", products)
}

// GetRecentOrders -> beberapa order terakhir.
func (dc *DashboardController) GetRecentOrders(c *gin.Context) {
	var orders []models.Order
	if err := dc.DB.
		Preload("Table").
		Order("created_at DESC").
		Limit(8).
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Recent orders retrieved successfully", orders)
}

// GetRevenueChart -> data revenue harian N hari terakhir sebagai JSON.
func (dc *DashboardController) GetRevenueChart(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 || days > 90 {
		days = 7
	}

	points, err := dc.Reports.DailyRevenue(days)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Revenue chart retrieved successfully", points)
}

// GetRevenueChartImage -> chart yang sama dirender jadi PNG.
func (dc *DashboardController) GetRevenueChartImage(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 || days > 90 {
		days = 7
	}

	png, err := dc.Reports.RevenueChartPNG(days)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
