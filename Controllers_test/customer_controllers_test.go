package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/siszum/pos-server/controllers"
	"github.com/siszum/pos-server/models"
	"github.com/siszum/pos-server/utils"
)

func setupTestDBForCustomers(name string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(&models.Customer{}, &models.Order{}, &models.Reservation{})
	if err != nil {
		panic(err)
	}
	return db
}

func setupCustomerRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	customerCtrl := controllers.NewCustomerController(db)
	router.GET("/customers", customerCtrl.GetAllCustomers)
	router.GET("/customers/:id", customerCtrl.GetCustomerByID)
	router.POST("/customers", customerCtrl.CreateCustomer)
	router.PUT("/customers/:id", customerCtrl.UpdateCustomer)
	router.DELETE("/customers/:id", customerCtrl.DeleteCustomer)
	return router
}

func postCustomer(router *gin.Engine, payload map[string]interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/customers", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateCustomerGeneratesSequentialCode(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCustomers("customer_create")
	router := setupCustomerRouter(db)

	w := postCustomer(router, map[string]interface{}{
		"first_name": "Juan",
		"last_name":  "Dela Cruz",
		"email":      "juan@example.com",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			CustomerCode string `json:"customer_code"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CUST0001", resp.Data.CustomerCode)

	w = postCustomer(router, map[string]interface{}{
		"first_name": "Maria",
		"last_name":  "Santos",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CUST0002", resp.Data.CustomerCode)
}

func TestCreateCustomerRejectsDuplicateEmail(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCustomers("customer_dup")
	router := setupCustomerRouter(db)

	w := postCustomer(router, map[string]interface{}{
		"first_name": "Juan",
		"last_name":  "Dela Cruz",
		"email":      "juan@example.com",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postCustomer(router, map[string]interface{}{
		"first_name": "Pedro",
		"last_name":  "Reyes",
		"email":      "juan@example.com",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// tanpa field wajib -> 400
	w = postCustomer(router, map[string]interface{}{"first_name": "Solo"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAllCustomersSearchAndPagination(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCustomers("customer_list")
	router := setupCustomerRouter(db)

	names := [][2]string{
		{"Juan", "Dela Cruz"}, {"Maria", "Santos"}, {"Jose", "Rizal"},
		{"Ana", "Reyes"}, {"Pedro", "Cruz"}, {"Lucia", "Garcia"}, {"Marco", "Lopez"},
	}
	for _, n := range names {
		postCustomer(router, map[string]interface{}{
			"first_name": n[0],
			"last_name":  n[1],
		})
	}

	// default limit 5
	req, _ := http.NewRequest("GET", "/customers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data       []models.Customer `json:"data"`
		Pagination utils.Pagination  `json:"pagination"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 5)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
	assert.EqualValues(t, 7, resp.Pagination.TotalItems)

	// search case-insensitive di beberapa kolom
	req, _ = http.NewRequest("GET", "/customers?search=cruz", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 2, resp.Pagination.TotalItems)

	// halaman melewati akhir -> kosong
	req, _ = http.NewRequest("GET", "/customers?page=99", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)
}

func TestDeleteCustomerBlockedByOrders(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCustomers("customer_delete")
	router := setupCustomerRouter(db)

	postCustomer(router, map[string]interface{}{
		"first_name": "Juan",
		"last_name":  "Dela Cruz",
	})

	var customer models.Customer
	db.First(&customer)
	db.Create(&models.Order{
		OrderCode:    "ORD20250101001",
		CustomerID:   &customer.ID,
		CustomerName: "Juan Dela Cruz",
		Status:       models.OrderCompleted,
		CreatedBy:    1,
	})

	req, _ := http.NewRequest("DELETE", "/customers/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Customer{}).Count(&count)
	assert.EqualValues(t, 1, count)
}
