package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/siszum/pos-server/models"
	"github.com/siszum/pos-server/services"
	"github.com/siszum/pos-server/utils"
	"gorm.io/gorm"
)

type TransactionController struct {
	DB      *gorm.DB
	Reports *services.ReportService
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db, Reports: services.NewReportService(db)}
}

// GetAllTransactions -> pagination + filter status, metode bayar, rentang
// tanggal, dan search kode/nama.
func (tc *TransactionController) GetAllTransactions(c *gin.Context) {
	params := utils.ParsePageParams(c, 10)

	query := tc.DB.Model(&models.Transaction{}).
		Joins("LEFT JOIN orders ON orders.id = transactions.order_id")

	if status := c.Query("status"); status != "" && status != "all" {
		query = query.Where("transactions.status = ?", status)
	}
	if method := c.Query("payment_method"); method != "" && method != "all" {
		query = query.Where("transactions.payment_method = ?", method)
	}
	if from := c.Query("date_from"); from != "" {
		query = query.Where("transactions.payment_date >= ?", from)
	}
	if to := c.Query("date_to"); to != "" {
		query = query.Where("transactions.payment_date <= ?", to)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(transactions.transaction_code) LIKE ? OR LOWER(orders.order_code) LIKE ? OR LOWER(orders.customer_name) LIKE ?",
			pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var transactions []models.Transaction
	if err := query.
		Preload("Order").
		Preload("Customer").
		Order("transactions.payment_date DESC, transactions.payment_time DESC").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&transactions).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondPage(c, http.StatusOK, "Transactions retrieved successfully", transactions,
		utils.BuildPagination(params, total))
}

// GetTransactionStats -> total revenue gabungan transaksi + fee reservasi.
func (tc *TransactionController) GetTransactionStats(c *gin.Context) {
	var totalTransactions int64
	var totalRevenue, revenueToday, reservationFees float64
	var cashCount, gcashCount, cardCount int64

	tc.DB.Model(&models.Transaction{}).Where("status = ?", "completed").Count(&totalTransactions)
	tc.DB.Model(&models.Transaction{}).
		Where("status = ?", "completed").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalRevenue)

	today := time.Now().Format("2006-01-02")
	tc.DB.Model(&models.Transaction{}).
		Where("status = ? AND payment_date = ?", "completed", today).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&revenueToday)

	tc.DB.Model(&models.Reservation{}).
		Where("status IN ? AND payment_status = ?",
			[]string{models.ReservationConfirmed, models.ReservationCompleted}, "paid").
		Select("COALESCE(SUM(payment_amount), 0)").
		Scan(&reservationFees)

	tc.DB.Model(&models.Transaction{}).Where("payment_method = ?", models.PaymentCash).Count(&cashCount)
	tc.DB.Model(&models.Transaction{}).Where("payment_method = ?", models.PaymentGcash).Count(&gcashCount)
	tc.DB.Model(&models.Transaction{}).Where("payment_method = ?", models.PaymentCard).Count(&cardCount)

	utils.RespondJSON(c, http.StatusOK, "Transaction statistics retrieved successfully", gin.H{
		"total_transactions": totalTransactions,
		"total_revenue":      totalRevenue + reservationFees,
		"revenue_today":      revenueToday,
		"reservation_fees":   reservationFees,
		"payment_methods": gin.H{
			"cash":  cashCount,
			"gcash": gcashCount,
			"card":  cardCount,
		},
	})
}

func (tc *TransactionController) GetTransactionByID(c *gin.Context) {
	var transaction models.Transaction
	if err := tc.DB.
		Preload("Order.OrderItems.MenuItem").
		Preload("Customer").
		First(&transaction, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("transaction not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Transaction retrieved successfully", transaction)
}

// ExportTransactionsPDF -> laporan transaksi dalam rentang tanggal sebagai PDF.
func (tc *TransactionController) ExportTransactionsPDF(c *gin.Context) {
	dateFrom := c.DefaultQuery("date_from", time.Now().AddDate(0, 0, -30).Format("2006-01-02"))
	dateTo := c.DefaultQuery("date_to", time.Now().Format("2006-01-02"))

	pdfBytes, err := tc.Reports.TransactionsPDF(dateFrom, dateTo)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	filename := fmt.Sprintf("transactions_%s_%s.pdf", dateFrom, dateTo)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
