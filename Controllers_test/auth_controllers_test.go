package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/siszum/pos-server/config"
	"github.com/siszum/pos-server/controllers"
	"github.com/siszum/pos-server/models"
	"github.com/siszum/pos-server/utils"
)

func setupTestDBForAuth(name string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		panic(err)
	}
	// Seed: satu admin aktif dan satu yang dinonaktifkan
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	db.Create(&models.Admin{
		Username:     "admin1",
		Email:        "admin@siszum.com",
		PasswordHash: string(hash),
		FirstName:    "Admin",
		LastName:     "One",
		Role:         "admin",
		IsActive:     true,
	})
	former := models.Admin{
		Username:     "former1",
		Email:        "former@siszum.com",
		PasswordHash: string(hash),
		FirstName:    "Former",
		LastName:     "Staff",
		Role:         "admin",
		IsActive:     false,
	}
	db.Create(&former)
	// GORM melewati nilai zero untuk kolom ber-default:true, jadi paksa via Update
	db.Model(&former).Update("is_active", false)
	return db
}

func setupAuthRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	authCtrl := controllers.NewAuthController(db)
	router.POST("/login", authCtrl.Login)
	return router
}

func login(router *gin.Engine, email, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	utils.InitLogger()
	config.Load()
	db := setupTestDBForAuth("auth_success")
	router := setupAuthRouter(db)

	w := login(router, "admin@siszum.com", "secret123")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Token string       `json:"token"`
			User  models.Admin `json:"user"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.Token)
	assert.Equal(t, "admin@siszum.com", resp.Data.User.Email)

	// token harus valid dan membawa identitas admin
	claims, err := utils.ParseToken(resp.Data.Token)
	assert.NoError(t, err)
	assert.Equal(t, "admin@siszum.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)

	// last_login terisi setelah login
	var admin models.Admin
	db.Where("email = ?", "admin@siszum.com").First(&admin)
	assert.NotNil(t, admin.LastLogin)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	utils.InitLogger()
	config.Load()
	db := setupTestDBForAuth("auth_bad")
	router := setupAuthRouter(db)

	w := login(router, "admin@siszum.com", "wrong-password")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = login(router, "nobody@siszum.com", "secret123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// akun nonaktif tidak boleh masuk walau password benar
	w = login(router, "former@siszum.com", "secret123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginValidation(t *testing.T) {
	utils.InitLogger()
	config.Load()
	db := setupTestDBForAuth("auth_validation")
	router := setupAuthRouter(db)

	w := login(router, "not-an-email", "secret123")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = login(router, "admin@siszum.com", "123")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBlacklistedTokenIsRejected(t *testing.T) {
	utils.InitLogger()
	config.Load()

	token, err := utils.GenerateToken(1, "admin@siszum.com", "admin")
	assert.NoError(t, err)

	_, err = utils.ParseToken(token)
	assert.NoError(t, err)

	utils.BlacklistToken(token)
	_, err = utils.ParseToken(token)
	assert.Error(t, err)
}
