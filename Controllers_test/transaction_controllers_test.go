package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/siszum/pos-server/controllers"
	"github.com/siszum/pos-server/models"
	"github.com/siszum/pos-server/utils"
)

func setupTestDBForTransactions(name string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(
		&models.Customer{},
		&models.Order{},
		&models.Transaction{},
		&models.Reservation{},
	)
	if err != nil {
		panic(err)
	}

	today := time.Now().Format("2006-01-02")

	order := models.Order{OrderCode: "ORD20250101001", CustomerName: "Juan Dela Cruz", TotalAmount: 999, Status: models.OrderCompleted, CreatedBy: 1}
	db.Create(&order)

	db.Create(&models.Transaction{
		TransactionCode: "TXN1001", OrderID: order.ID, PaymentMethod: models.PaymentCash,
		Amount: 999, Status: "completed", PaymentDate: today, PaymentTime: "12:30:00", ProcessedBy: 1,
	})
	db.Create(&models.Transaction{
		TransactionCode: "TXN1002", OrderID: order.ID, PaymentMethod: models.PaymentGcash,
		Amount: 500, Status: "completed", PaymentDate: "2025-01-15", PaymentTime: "19:00:00", ProcessedBy: 1,
	})

	// reservasi berbayar ikut dihitung sebagai revenue
	db.Create(&models.Reservation{
		ReservationCode: "RES1", CustomerName: "Maria", Phone: "0917", TableID: 1,
		NumberOfGuests: 4, ReservationDate: today, ReservationTime: "18:00",
		DurationHours: 2, PaymentAmount: 300, PaymentStatus: "paid",
		Status: models.ReservationConfirmed,
	})
	return db
}

func setupTransactionRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	txnCtrl := controllers.NewTransactionController(db)
	router.GET("/transactions", txnCtrl.GetAllTransactions)
	router.GET("/transactions/stats", txnCtrl.GetTransactionStats)
	router.GET("/transactions/export/pdf", txnCtrl.ExportTransactionsPDF)
	router.GET("/transactions/:id", txnCtrl.GetTransactionByID)
	return router
}

func TestGetAllTransactionsFilters(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTransactions("txn_list")
	router := setupTransactionRouter(db)

	var resp struct {
		Data       []models.Transaction `json:"data"`
		Pagination utils.Pagination     `json:"pagination"`
	}

	req, _ := http.NewRequest("GET", "/transactions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)

	// filter metode pembayaran
	req, _ = http.NewRequest("GET", "/transactions?payment_method=gcash", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "TXN1002", resp.Data[0].TransactionCode)

	// filter rentang tanggal
	req, _ = http.NewRequest("GET", "/transactions?date_from=2025-01-01&date_to=2025-01-31", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)

	// search kode order
	req, _ = http.NewRequest("GET", "/transactions?search=ord2025", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
}

func TestGetTransactionStatsIncludesReservationFees(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTransactions("txn_stats")
	router := setupTransactionRouter(db)

	req, _ := http.NewRequest("GET", "/transactions/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			TotalTransactions int64   `json:"total_transactions"`
			TotalRevenue      float64 `json:"total_revenue"`
			ReservationFees   float64 `json:"reservation_fees"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 2, resp.Data.TotalTransactions)
	assert.InDelta(t, 300, resp.Data.ReservationFees, 0.001)
	assert.InDelta(t, 999+500+300, resp.Data.TotalRevenue, 0.001)
}

func TestExportTransactionsPDF(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTransactions("txn_pdf")
	router := setupTransactionRouter(db)

	req, _ := http.NewRequest("GET", "/transactions/export/pdf?date_from=2025-01-01&date_to=2025-12-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytesHavePDFHeader(w.Body.Bytes()))
}

func bytesHavePDFHeader(b []byte) bool {
	return len(b) > 4 && string(b[:5]) == "%PDF-"
}
