package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"railbook/config"
	"railbook/services"
)

// Handlers bundles the services behind the HTTP surface.
type Handlers struct {
	Auth     *services.Auth
	Trains   *services.Trains
	Bookings *services.Bookings
}

func New(auth *services.Auth, trains *services.Trains, bookings *services.Bookings) *Handlers {
	return &Handlers{Auth: auth, Trains: trains, Bookings: bookings}
}

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(cfg *config.Config, h *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestTimeout(cfg.RequestTimeout))

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	router.POST("/register", h.Register)
	router.POST("/login", h.Login)
	router.GET("/availability", h.ListAvailability)

	router.POST("/trains", h.RequireAdminKey(), h.AddTrain)

	bookings := router.Group("/bookings", h.RequireUser())
	{
		bookings.POST("", h.BookSeat)
		bookings.GET("/:id", h.GetBooking)
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "route not found"})
	})

	return router
}
