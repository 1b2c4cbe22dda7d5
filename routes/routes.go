package routes

import (
	"github.com/Naveendeworks/emergent/configs"
	"github.com/Naveendeworks/emergent/controllers"
	"github.com/Naveendeworks/emergent/middlewares"
	"github.com/Naveendeworks/emergent/repository"
	"github.com/Naveendeworks/emergent/services"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	notifSvc := services.NewNotificationService(notifRepo, cfg.Timezone)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, notifSvc, cfg.Timezone)
	reportSvc := services.NewReportService(db, orderRepo)
	menuSvc := services.NewMenuService(menuRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	orderCtrl := controllers.NewOrderController(orderSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	reportCtrl := controllers.NewReportController(reportSvc)
	notifCtrl := controllers.NewNotificationController(notifSvc)
	authCtrl := controllers.NewAuthController(authSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/verify", auth, authCtrl.Verify)
		a.GET("/me", auth, authCtrl.Me)
	}

	// Public: menu browsing, customer order lookup, pickup display
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/item/:id", menuCtrl.Item)
	r.GET("/menu/category/:category", menuCtrl.ByCategory)
	r.GET("/menu/search/:query", menuCtrl.Search)
	r.GET("/orders/myorder/:orderNumber", orderCtrl.MyOrder)
	r.GET("/notifications/active", notifCtrl.Active)

	// Orders (staff)
	o := r.Group("/orders", auth)
	{
		o.GET("", orderCtrl.List)
		o.POST("", orderCtrl.Create)
		o.GET("/stats/summary", orderCtrl.Stats)
		o.GET("/view-orders", orderCtrl.ViewOrders)
		o.PATCH("/cooking-status", orderCtrl.UpdateCookingStatus)
		o.GET("/:id", orderCtrl.Detail)
		o.PUT("/:id", orderCtrl.Update)
		o.PATCH("/:id/items", orderCtrl.AdjustItem)
		o.PUT("/:id/complete", orderCtrl.Complete)
		o.DELETE("/:id", orderCtrl.Cancel)
	}

	// Reports (staff)
	rep := r.Group("/reports", auth)
	{
		rep.GET("/payment", reportCtrl.PaymentReports)
		rep.GET("/items", reportCtrl.ItemReports)
	}

	// Notifications (staff)
	n := r.Group("/notifications", auth)
	{
		n.GET("", notifCtrl.List)
		n.PATCH("/:id/read", notifCtrl.MarkRead)
		n.PATCH("/:id/dismiss", notifCtrl.Dismiss)
	}
}
