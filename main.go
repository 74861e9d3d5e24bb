package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/siszum/pos-server/config"
	"github.com/siszum/pos-server/models"
	"github.com/siszum/pos-server/realtime"
	"github.com/siszum/pos-server/router"
	"github.com/siszum/pos-server/services"
	"github.com/siszum/pos-server/utils"
	"gorm.io/gorm"
)

func main() {
	// .env opsional; production pakai environment langsung
	_ = godotenv.Load()

	config.Load()
	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InitDB(db)

	if err := autoMigrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate database: %v", err)
	}

	realtime.SetLogger(utils.ErrorLogger.Printf)

	timers := services.NewTimerService(db)
	timers.StartSweeper(utils.InfoLogger.Printf)
	defer timers.StopSweeper()

	// bersihkan token blacklist yang sudah kadaluarsa tiap jam
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			utils.CleanupBlacklist()
		}
	}()

	r := router.SetupRouter(db, timers)

	utils.InfoLogger.Printf("SISZUM POS server listening on port %s", config.App.Port)
	if err := r.Run(":" + config.App.Port); err != nil {
		utils.ErrorLogger.Fatalf("Server stopped: %v", err)
	}
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Customer{},
		&models.RestaurantTable{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.RawItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Transaction{},
		&models.Receipt{},
		&models.Reservation{},
		&models.RefillRequest{},
		&models.CustomerTimer{},
	)
}
