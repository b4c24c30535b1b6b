package routes

import (
	"github.com/luisgarciam27/demo-churre/configs"
	"github.com/luisgarciam27/demo-churre/controllers"
	"github.com/luisgarciam27/demo-churre/middlewares"
	"github.com/luisgarciam27/demo-churre/repository"
	"github.com/luisgarciam27/demo-churre/services"
	"github.com/luisgarciam27/demo-churre/ws"

	"github.com/gin-gonic/gin"
	"github.com/tmc/langchaingo/llms"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, model llms.Model, hub *ws.OrderHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cashRepo := repository.NewCashRepository(db)
	configRepo := repository.NewConfigRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, cashRepo, configRepo, cfg.WhatsAppNumber)
	orderSvc.Notify = hub
	cashSvc := services.NewCashService(db, cashRepo, orderRepo)
	recommendSvc := services.NewRecommendService(menuRepo, model)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	catalogCtrl := controllers.NewCatalogController(db)
	configCtrl := controllers.NewConfigController(db, cfg.WhatsAppNumber)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	posCtrl := controllers.NewPOSController(cashSvc, orderSvc)
	recommendCtrl := controllers.NewRecommendController(recommendSvc)
	authCtrl := controllers.NewAuthController(authSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Público (carta digital del comensal)
	r.GET("/menu", catalogCtrl.ListMenu)
	r.GET("/categories", catalogCtrl.ListCategories)
	r.GET("/config", configCtrl.Get)
	r.POST("/recommend", recommendCtrl.Recommend)

	// Carrito (sesión web anónima o terminal POS, vía X-Client-Key)
	cart := r.Group("/cart")
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/qty", cartCtrl.UpdateQty)
		cart.DELETE("/items", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Checkout web → WhatsApp
	r.POST("/checkout", orderCtrl.Checkout)

	// Staff: cola de pedidos
	staff := r.Group("/orders", middlewares.AuthMiddleware(cfg.JWTSecret, "admin", "cajero"))
	{
		staff.GET("", orderCtrl.List) // ?status=Pendiente
		staff.GET("/:id", orderCtrl.Detail)
		staff.PATCH("/:id/status", orderCtrl.UpdateStatus)
	}

	// Staff: caja y cobro
	pos := r.Group("/pos", middlewares.AuthMiddleware(cfg.JWTSecret, "admin", "cajero"))
	{
		pos.POST("/session/open", posCtrl.OpenShift)
		pos.GET("/session", posCtrl.ActiveSession)
		pos.GET("/session/summary", posCtrl.Summary)
		pos.POST("/session/movements", posCtrl.RecordMovement)
		pos.POST("/session/close", posCtrl.CloseShift)
		pos.POST("/cobro", posCtrl.Cobro)
	}

	// Admin: editor de carta y branding
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.POST("/menu", catalogCtrl.CreateMenuItem)
		admin.PATCH("/menu/:id", catalogCtrl.UpdateMenuItem)
		admin.DELETE("/menu/:id", catalogCtrl.DeleteMenuItem)
		admin.POST("/categories", catalogCtrl.CreateCategory)
		admin.DELETE("/categories/:id", catalogCtrl.DeleteCategory)
		admin.PUT("/config", configCtrl.Update)
	}

	// Push de pedidos a terminales POS
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.ServeWS)
}
