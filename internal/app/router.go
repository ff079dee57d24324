package app

import (
	"business_health_backend/docs"
	"business_health_backend/internal/config"
	"business_health_backend/internal/middleware"
	"business_health_backend/internal/model"
	"business_health_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/subscription/plans", c.subscription.Plans)

		catalogGroup := public.Group("/catalog")
		{
			catalogGroup.GET("/industries", c.catalog.Industries)
			catalogGroup.GET("/functions", c.catalog.Functions)
			catalogGroup.GET("/startup/business-models", c.catalog.BusinessModels)
			catalogGroup.GET("/startup/revenue-models", c.catalog.RevenueModels)
		}
	}

	// Authenticated routes
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.Profile)
		authGroup.PUT("/profile", c.auth.UpdateProfile)

		authGroup.POST("/assessments", c.assessment.Submit)
		authGroup.GET("/assessments", c.assessment.History)
		authGroup.GET("/assessments/latest", c.assessment.Latest)
		authGroup.DELETE("/assessments", c.assessment.Clear)

		authGroup.GET("/chat/suggestions", c.chat.Suggestions)

		authGroup.GET("/subscription/status", c.subscription.Status)
		authGroup.POST("/subscription/payments", c.subscription.RequestPayment)
		authGroup.GET("/subscription/payments", c.subscription.PaymentHistory)

		// Advisor chat sits behind the subscription gate
		entitled := authGroup.Group("/chat")
		entitled.Use(middleware.EntitlementMiddleware(a.services.subscription))
		{
			entitled.POST("/sessions", c.chat.StartSession)
			entitled.GET("/sessions", c.chat.ListSessions)
			entitled.DELETE("/sessions/:id", c.chat.DeleteSession)
			entitled.POST("/sessions/:id/messages", c.chat.SendMessage)
			entitled.GET("/sessions/:id/messages", c.chat.Messages)
		}
	}

	// Admin routes
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.List)
		admin.GET("/payments", c.subscription.ListPayments)
		admin.POST("/payments/:id/review", c.subscription.ReviewPayment)
	}
}
