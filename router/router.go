package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/rotibox/controllers"
	"github.com/yeremiapane/rotibox/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	menuCtrl := controllers.NewMenuController(db)
	cartCtrl := controllers.NewCartController(db)
	orderCtrl := controllers.NewOrderController(db)
	contactCtrl := controllers.NewContactController(db)
	reportCtrl := controllers.NewReportController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter ketat untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Katalog dan info toko bisa dilihat tanpa login
	r.GET("/menus", menuCtrl.GetActiveMenus)
	r.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
	r.GET("/contact", contactCtrl.GetInfoContact)

	// ----------------------------------------------------------------
	//                      CUSTOMER ROUTES
	// ----------------------------------------------------------------
	customer := r.Group("/")
	customer.Use(middlewares.AuthMiddleware())
	{
		customer.POST("/logout", userCtrl.Logout)
		customer.GET("/profile", userCtrl.GetProfile)
		customer.PATCH("/profile", userCtrl.UpdateProfile)
		customer.PATCH("/profile/password", userCtrl.ChangePassword)

		customer.GET("/cart", cartCtrl.GetCart)
		customer.GET("/cart/count", cartCtrl.GetCartCount)
		customer.POST("/cart", cartCtrl.AddToCart)
		customer.PATCH("/cart/:item_id", cartCtrl.UpdateQuantity)
		customer.DELETE("/cart/:item_id", cartCtrl.RemoveFromCart)
		customer.DELETE("/cart", cartCtrl.ClearCart)

		customer.POST("/checkout", orderCtrl.Checkout)
		customer.GET("/orders", orderCtrl.GetMyOrders)
		customer.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		customer.POST("/orders/:order_id/cancel", orderCtrl.CancelOrder)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		admin.GET("/users", userCtrl.GetAllUsers)

		admin.GET("/menus", menuCtrl.GetAllMenus)
		admin.GET("/menus/count", menuCtrl.GetMenuCount)
		admin.POST("/menus", menuCtrl.CreateMenu)
		admin.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
		admin.PUT("/menus/:menu_id", menuCtrl.UpdateMenu)
		admin.PATCH("/menus/:menu_id/active", menuCtrl.SetMenuActive)
		admin.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		admin.PATCH("/orders/:order_id/status", orderCtrl.UpdateStatus)
		admin.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

		admin.PUT("/contact", contactCtrl.UpdateInfoContact)

		admin.GET("/reports/sales", reportCtrl.GetSalesReport)
		admin.GET("/reports/sales/rows", reportCtrl.GetSalesExportRows)
		admin.GET("/dashboard/stats", reportCtrl.GetDashboardStats)
	}

	// WebSocket endpoint untuk live update
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("", controllers.LiveHandler)
	}

	return r
}
