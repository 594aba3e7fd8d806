package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tutorbase/handlers"
	"tutorbase/middleware"
)

// HandlerBundle carries the assembled handlers into route registration.
type HandlerBundle struct {
	Tutors  *handlers.TutorHandler
	Booking *handlers.BookingHandler
	Payment *handlers.PaymentHandler
	Admin   *handlers.AdminHandler
}

// RegisterRoutes wires up the full HTTP surface.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Admin-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Tutorbase"})
	})
}

// RegisterBookingRoutes sets up the scheduling and booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/tutors", hb.Tutors.ListTutorsHandler)
		api.GET("/availability", hb.Booking.AvailabilityHandler)
		api.POST("/quote", hb.Booking.QuoteHandler)
		api.POST("/book", hb.Booking.CreateBookingHandler)
	}
}

// RegisterPaymentRoutes sets up Stripe checkout and its webhook.
func RegisterPaymentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/checkout", hb.Payment.CreateCheckoutHandler)
		api.POST("/stripe/webhook", hb.Payment.StripeWebhookHandler)
	}
}

// RegisterAdminRoutes sets up operator endpoints behind the admin key.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.AdminAuthMiddleware())
		api.GET("/bookings", hb.Admin.ListBookingsHandler)
		api.PUT("/tutors", hb.Admin.UpsertTutorHandler)
	}
}
