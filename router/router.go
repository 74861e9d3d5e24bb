package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/siszum/pos-server/config"
	"github.com/siszum/pos-server/controllers"
	"github.com/siszum/pos-server/middlewares"
	"github.com/siszum/pos-server/services"
	"gorm.io/gorm"
)

// SetupRouter merangkai seluruh endpoint REST + websocket untuk admin console.
func SetupRouter(db *gorm.DB, timers *services.TimerService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.NewRateLimiter(100, 60).RateLimit())

	authController := controllers.NewAuthController(db)
	dashboardController := controllers.NewDashboardController(db, timers)
	reservationController := controllers.NewReservationController(db)
	tableController := controllers.NewTableController(db)
	inventoryController := controllers.NewInventoryController(db)
	rawInventoryController := controllers.NewRawInventoryController(db)
	customerController := controllers.NewCustomerController(db)
	orderController := controllers.NewOrderController(db)
	transactionController := controllers.NewTransactionController(db)
	refillController := controllers.NewRefillController(db)
	timerController := controllers.NewTimerController(timers)

	// gambar menu yang di-upload disajikan statis
	r.Static("/uploads", config.App.UploadDir)

	r.GET("/ws", controllers.HandleWebSocket)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/login", middlewares.NewStrictRateLimiter(), authController.Login)

			authed := auth.Group("")
			authed.Use(middlewares.AuthMiddleware(db))
			{
				authed.GET("/me", authController.Me)
				authed.PUT("/profile", authController.UpdateProfile)
				authed.POST("/logout", authController.Logout)
			}
		}

		protected := api.Group("")
		protected.Use(middlewares.AuthMiddleware(db))
		{
			dashboard := protected.Group("/admin/dashboard")
			{
				dashboard.GET("/stats", dashboardController.GetDashboardStats)
				dashboard.GET("/upcoming-guests", dashboardController.GetUpcomingGuests)
				dashboard.GET("/pending-orders", dashboardController.GetPendingOrders)
				dashboard.GET("/top-products", dashboardController.GetTopProducts)
				dashboard.GET("/recent-orders", dashboardController.GetRecentOrders)
				dashboard.GET("/revenue-chart", dashboardController.GetRevenueChart)
				dashboard.GET("/revenue-chart.png", dashboardController.GetRevenueChartImage)
			}

			reservations := protected.Group("/reservations")
			{
				reservations.GET("", reservationController.GetAllReservations)
				reservations.GET("/:id", reservationController.GetReservationByID)
				reservations.POST("", reservationController.CreateReservation)
				reservations.PUT("/:id", reservationController.UpdateReservation)
				reservations.PUT("/:id/status", reservationController.UpdateReservationStatus)
				reservations.DELETE("/:id", reservationController.DeleteReservation)
			}

			tables := protected.Group("/tables")
			{
				tables.GET("", tableController.GetAllTables)
				tables.GET("/:id", tableController.GetTableByID)
				tables.PUT("/:id/status", tableController.UpdateTableStatus)
			}

			inventory := protected.Group("/inventory")
			{
				inventory.GET("", inventoryController.GetAllItems)
				inventory.GET("/categories", inventoryController.GetCategories)
				inventory.GET("/stats", inventoryController.GetInventoryStats)
				inventory.POST("", inventoryController.CreateItem)
				inventory.PUT("/:id", inventoryController.UpdateItem)
				inventory.DELETE("/:id", inventoryController.DeleteItem)
			}

			rawInventory := protected.Group("/raw-inventory")
			{
				rawInventory.GET("", rawInventoryController.GetAllRawItems)
				rawInventory.POST("", rawInventoryController.CreateRawItem)
				rawInventory.PUT("/:id", rawInventoryController.UpdateRawItem)
				rawInventory.DELETE("/:id", rawInventoryController.DeleteRawItem)
			}

			customers := protected.Group("/customers")
			{
				customers.GET("", customerController.GetAllCustomers)
				customers.GET("/stats/overview", customerController.GetCustomerStats)
				customers.GET("/:id", customerController.GetCustomerByID)
				customers.POST("", customerController.CreateCustomer)
				customers.PUT("/:id", customerController.UpdateCustomer)
				customers.DELETE("/:id", customerController.DeleteCustomer)
			}

			orders := protected.Group("/orders")
			{
				orders.GET("", orderController.GetAllOrders)
				orders.GET("/stats/overview", orderController.GetOrderStats)
				orders.GET("/customer/:id", orderController.GetOrdersByCustomer)
				orders.GET("/:id", orderController.GetOrderByID)
				orders.POST("", orderController.CreateOrder)
				orders.PUT("/:id", orderController.UpdateOrder)
				orders.DELETE("/:id", orderController.DeleteOrder)
			}

			transactions := protected.Group("/transactions")
			{
				transactions.GET("", transactionController.GetAllTransactions)
				transactions.GET("/stats", transactionController.GetTransactionStats)
				transactions.GET("/export/pdf", transactionController.ExportTransactionsPDF)
				transactions.GET("/:id", transactionController.GetTransactionByID)
			}

			refills := protected.Group("/refills")
			{
				refills.GET("", refillController.GetAllRefills)
				refills.POST("", refillController.CreateRefill)
				refills.PUT("/:id/status", refillController.UpdateRefillStatus)
			}

			timersGroup := protected.Group("/timers")
			{
				timersGroup.GET("", timerController.GetAllTimers)
				timersGroup.POST("", timerController.CreateTimer)
				timersGroup.PUT("/:id/stop", timerController.StopTimer)
				timersGroup.DELETE("/:id", timerController.DeleteTimer)
			}
		}
	}

	return r
}
