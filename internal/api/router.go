package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/api/handlers"
	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/api/middleware"
	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/config"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, svcs *handlers.Services, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))
	router.Use(middleware.Metrics())

	// Health check and metrics
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Storefront API. Every route rides the cart cookie so the shopper's
	// identifier exists before their first cart touch.
	apiRoutes := router.Group("/api")
	apiRoutes.Use(middleware.CartID(logger))
	{
		apiRoutes.GET("/home", handlers.HandleHome(svcs, logger))
		apiRoutes.GET("/products", handlers.HandleListProducts(svcs, logger))
		apiRoutes.GET("/products/:id", handlers.HandleGetProduct(svcs, logger))
		apiRoutes.GET("/testimonials", handlers.HandleListTestimonials(svcs, logger))
		apiRoutes.GET("/pages/:slug", handlers.HandleGetPage(svcs, logger))

		cartRoutes := apiRoutes.Group("/cart")
		{
			cartRoutes.GET("", handlers.HandleGetCart(svcs, logger))
			cartRoutes.POST("/items", handlers.HandleAddCartItem(svcs, logger))
			cartRoutes.PATCH("/items/:productId/:sizeId", handlers.HandleUpdateCartItem(svcs, logger))
			cartRoutes.DELETE("/items/:productId/:sizeId", handlers.HandleRemoveCartItem(svcs, logger))
			cartRoutes.DELETE("", handlers.HandleClearCart(svcs, logger))
		}

		apiRoutes.POST("/checkout", handlers.HandleCheckout(svcs, logger))

		apiRoutes.GET("/booking/calendar", handlers.HandleBookingCalendar(svcs, logger))
		apiRoutes.POST("/bookings", handlers.HandleCreateBooking(svcs, logger))
		apiRoutes.POST("/uploads/inspiration", handlers.HandleUploadInspiration(svcs, logger))

		apiRoutes.GET("/orders/track/:orderId", handlers.HandleTrackOrder(svcs, logger))
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
