package router

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/limpacelular/limpa-celular/controllers"
	"github.com/limpacelular/limpa-celular/middlewares"
	"github.com/limpacelular/limpa-celular/models"
)

func SetupRouter(db *gorm.DB, corsOrigins []string) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"127.0.0.1"})

	r.Use(middlewares.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(corsOrigins))

	globalLimiter := middlewares.NewRateLimiter(rate.Limit(50), 50)
	r.Use(globalLimiter.Middleware())

	authCtrl := controllers.NewAuthController(db)
	requestCtrl := controllers.NewRequestController(db)
	cloudCtrl := controllers.NewCloudConfigController(db)
	healthCtrl := controllers.NewHealthController(db)

	r.GET("/health", healthCtrl.Health)
	r.GET("/health/db", healthCtrl.DatabaseHealth)

	// Limite mais agressivo para tentativa de credencial.
	auth := r.Group("/auth")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
	}

	r.GET("/me", middlewares.RequireAuth(), authCtrl.Me)

	requests := r.Group("/requests")
	requests.Use(middlewares.RequireAuth())
	{
		requests.POST("", requestCtrl.Create)
		requests.GET("", requestCtrl.List)
		requests.PATCH("/:id/status", middlewares.RequireRole(models.RoleAdmin), requestCtrl.UpdateStatus)
		requests.POST("/:id/scan/mock", requestCtrl.MockScan)
	}

	admin := r.Group("/admin")
	admin.Use(middlewares.RequireAuth(), middlewares.RequireRole(models.RoleAdmin))
	{
		admin.GET("/cloud-config", cloudCtrl.Get)
		admin.PUT("/cloud-config", cloudCtrl.Put)
	}

	return r
}
