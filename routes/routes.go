package routes

import (
	"net/http"
	"time"

	"swiftmove/handlers"
	"swiftmove/middleware"
	"swiftmove/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers the router wires up.
type HandlerBundle struct {
	Booking  *handlers.BookingHandler
	Session  *handlers.QuoteSessionHandler
	Promo    *handlers.PromoHandler
	Payment  *handlers.PaymentHandler
	Catalog  *handlers.CatalogHandler
	Schedule *handlers.ScheduleHandler
	Admin    *handlers.AdminHandler
}

// RegisterBookingRoutes sets up the endpoints of the booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBooking)
		api.GET("/:id", hb.Booking.GetBooking)
		api.POST("/:id/contact", hb.Booking.AttachContact)
		api.POST("/:id/send", hb.Booking.SendConfirmation)
		api.POST("/:id/create-checkout-session", hb.Payment.CreateCheckoutSession)
		api.POST("/:id/create-checkout-session-helper", hb.Payment.CreateCheckoutSessionHelper)
	}
}

// RegisterQuoteSessionRoutes sets up the quote wizard endpoints.
func RegisterQuoteSessionRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/quote")
	{
		api.POST("/session", hb.Session.StartSession)
		api.PUT("/session/:sessionID", hb.Session.UpdateSession)
		api.POST("/session/:sessionID/quote", hb.Session.QuoteSession)
		api.DELETE("/session/:sessionID", hb.Session.CancelSession)
	}
}

// RegisterPromoRoutes sets up promo code application.
func RegisterPromoRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/promocode")
	{
		api.POST("/:id/apply-promo", hb.Promo.ApplyPromo)
	}
}

// RegisterCatalogRoutes sets up the priced item catalog endpoint.
func RegisterCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.GET("/api/price-item", hb.Catalog.ListPriceItems)
}

// RegisterScheduleRoutes sets up scheduling data endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.GET("/slots", hb.Schedule.GetSlots)
		api.GET("/blackouts", hb.Schedule.GetBlackouts)
	}
}

// RegisterPaymentRoutes sets up the Stripe webhook.
func RegisterPaymentRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.POST("/api/payments/webhook", hb.Payment.Webhook)
}

// RegisterAdminRoutes sets up endpoints for back-office operations.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.Admin.Login)

		protected := adminGroup.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.POST("/price-item", hb.Admin.UpsertPriceItem)
		protected.DELETE("/price-item/:id", hb.Admin.DeletePriceItem)
		protected.POST("/blackouts", hb.Admin.CreateBlackout)
		protected.DELETE("/blackouts/:date", hb.Admin.DeleteBlackout)
		protected.GET("/bookings", hb.Admin.ListBookings)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterQuoteSessionRoutes(r, hb)
	RegisterPromoRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
