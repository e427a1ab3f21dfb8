package transport

import (
	"github.com/voyago/api/internal/transport/middleware"
	"github.com/voyago/api/pkg/auth"

	"github.com/gin-gonic/gin"
)

func InitRoutes(
	tokens *auth.TokenManager,
	authHandler *AuthHandler,
	userHandler *UserHandler,
	offerHandler *OfferHandler,
	bookingHandler *BookingHandler,
) *gin.Engine {

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30))
	router.Use(middleware.Identify(tokens))

	// API routes
	api := router.Group("/api")
	{
		// Auth routes
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", middleware.RequireAuth(), authHandler.Me)
		}

		// Offer routes
		offers := api.Group("/offers")
		{
			offers.GET("", offerHandler.ListOffers)
			offers.GET("/:id", offerHandler.GetOffer)
			offers.POST("", middleware.RequireAuth(), offerHandler.CreateOffer)
			offers.PUT("/:id", middleware.RequireAuth(), offerHandler.UpdateOffer)
			offers.DELETE("/:id", middleware.RequireAdmin(), offerHandler.DeleteOffer)
		}

		// User routes
		users := api.Group("/users")
		{
			users.GET("", middleware.RequireAdmin(), userHandler.GetAllUsers)
			users.GET("/:id", middleware.RequireAuth(), userHandler.GetUser)
			users.PUT("/:id", middleware.RequireAuth(), userHandler.UpdateUser)
			users.DELETE("/:id", middleware.RequireAdmin(), userHandler.DeleteUser)
		}

		// Booking routes
		bookings := api.Group("/bookings")
		{
			bookings.GET("", bookingHandler.GetAllBookings)
			bookings.GET("/:id", bookingHandler.GetBooking)
			bookings.GET("/user/:uid", middleware.RequireAuth(), bookingHandler.GetUserBookings)
			bookings.POST("", middleware.RequireAuth(), bookingHandler.CreateBooking)
			bookings.PUT("/:id", middleware.RequireAdmin(), bookingHandler.UpdateBooking)
			bookings.DELETE("/:id", middleware.RequireAuth(), bookingHandler.DeleteBooking)
		}
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}
