package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tehimas/warung-seblak/auth"
	"github.com/tehimas/warung-seblak/composer"
	"github.com/tehimas/warung-seblak/controllers"
	"github.com/tehimas/warung-seblak/middlewares"
	"github.com/tehimas/warung-seblak/services/whatsapp"
)

// SetupRouter merangkai seluruh route: storefront publik, sesi composer,
// dan panel admin di belakang middleware auth. Limiter dipasang di sini,
// sebelum route didaftarkan, supaya berlaku untuk semua endpoint.
func SetupRouter(db *gorm.DB, registry *composer.Registry, wa *whatsapp.Service,
	verifier auth.Verifier, store auth.SessionStore, limiter *middlewares.RateLimiter) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(limiter.RateLimit())

	// Inisialisasi controller
	authCtrl := controllers.NewAuthController(verifier, store)
	menuCtrl := controllers.NewMenuItemController(db)
	variationCtrl := controllers.NewVariationController(db)
	toppingCtrl := controllers.NewToppingController(db)
	stockCtrl := controllers.NewStockController(db)
	promoCtrl := controllers.NewPromoController(db)
	testimonialCtrl := controllers.NewTestimonialController(db)
	settingCtrl := controllers.NewSettingController(db)
	orderCtrl := controllers.NewOrderController(db)
	checkoutCtrl := controllers.NewCheckoutController(db, registry, wa)
	dashboardCtrl := controllers.NewDashboardController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES (storefront)
	// ----------------------------------------------------------------
	r.POST("/auth/login", middlewares.NewLoginRateLimiter(), authCtrl.Login)

	r.GET("/menu-items", menuCtrl.ListActive)
	r.GET("/variations", variationCtrl.ListAvailable)
	r.GET("/toppings", toppingCtrl.ListAvailable)
	r.GET("/promos", promoCtrl.ListActive)
	r.GET("/testimonials", testimonialCtrl.ListVisible)
	r.POST("/testimonials", testimonialCtrl.Create)
	r.GET("/settings", settingCtrl.GetSettings)

	// Sesi composer: satu sesi per tab pelanggan
	cmp := r.Group("/composer")
	{
		cmp.POST("", checkoutCtrl.CreateSession)
		cmp.GET("/:session_id", checkoutCtrl.GetState)
		cmp.POST("/:session_id/items", checkoutCtrl.AddItem)
		cmp.PATCH("/:session_id/items", checkoutCtrl.ChangeQuantity)
		cmp.PUT("/:session_id/variation", checkoutCtrl.SelectVariation)
		cmp.PATCH("/:session_id/toppings", checkoutCtrl.ChangeTopping)
		cmp.PUT("/:session_id/attributes", checkoutCtrl.SetAttribute)
		cmp.POST("/:session_id/checkout", checkoutCtrl.BeginCheckout)
		cmp.DELETE("/:session_id/checkout", checkoutCtrl.CancelCheckout)
		cmp.POST("/:session_id/submit", checkoutCtrl.Submit)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.GET("/events", middlewares.WebSocketAuthMiddleware(store), controllers.EventsHandler)

	admin.Use(middlewares.AuthMiddleware(store))
	{
		admin.POST("/logout", authCtrl.Logout)
		admin.GET("/profile", authCtrl.Profile)

		admin.GET("/dashboard", dashboardCtrl.Stats)

		admin.GET("/orders", orderCtrl.ListOrders)
		admin.GET("/orders/:order_id", orderCtrl.GetOrder)
		admin.GET("/orders/:order_id/actions", orderCtrl.Actions)
		admin.PATCH("/orders/:order_id/status", orderCtrl.AdvanceStatus)

		admin.GET("/menu-items", menuCtrl.ListAll)
		admin.POST("/menu-items", menuCtrl.Create)
		admin.PATCH("/menu-items/:id", menuCtrl.Update)
		admin.PATCH("/menu-items/:id/toggle", menuCtrl.ToggleActive)

		admin.GET("/variations", variationCtrl.ListAll)
		admin.POST("/variations", variationCtrl.Create)
		admin.PATCH("/variations/:id/stock", variationCtrl.UpdateStock)
		admin.PATCH("/variations/:id/toggle", variationCtrl.ToggleAvailability)

		admin.GET("/toppings", toppingCtrl.ListAll)
		admin.POST("/toppings", toppingCtrl.Create)
		admin.PATCH("/toppings/:id/stock", toppingCtrl.UpdateStock)
		admin.PATCH("/toppings/:id/toggle", toppingCtrl.ToggleAvailability)

		admin.GET("/stock-items", stockCtrl.List)
		admin.POST("/stock-items", stockCtrl.Create)
		admin.PATCH("/stock-items/:id/stock", stockCtrl.UpdateStock)

		admin.GET("/promos", promoCtrl.ListAll)
		admin.POST("/promos", promoCtrl.Create)
		admin.PATCH("/promos/:id/toggle", promoCtrl.ToggleActive)

		admin.GET("/testimonials", testimonialCtrl.ListAll)
		admin.PATCH("/testimonials/:id/toggle", testimonialCtrl.ToggleVisibility)

		admin.PUT("/settings", settingCtrl.UpsertSetting)
	}

	return r
}
