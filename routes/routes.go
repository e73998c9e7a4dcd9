package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pallala1989/beauty-plaza-online-hub-sub000/handlers"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/middleware"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/utils"
)

// HandlerBundle aggregates the handlers wired in main.
type HandlerBundle struct {
	Booking *handlers.BookingHandler
	Catalog *handlers.CatalogHandler
	Loyalty *handlers.LoyaltyHandler
	Admin   *handlers.AdminHandler
}

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})

	api := r.Group("/api")
	{
		api.POST("/auth/token", handlers.IssueTokenHandler)
		api.GET("/services", hb.Catalog.ListServices)
		api.GET("/technicians", hb.Catalog.ListTechnicians)

		bookingGroup := api.Group("/booking")
		{
			// Availability is public: the wizard queries it before sign-in.
			bookingGroup.GET("/slots", hb.Booking.GetBookedSlots)

			protected := bookingGroup.Group("")
			protected.Use(middleware.JWTAuthCustomerMiddleware())
			protected.POST("", hb.Booking.CreateAppointment)
			protected.POST("/:id/reschedule", hb.Booking.RescheduleAppointment)
			protected.POST("/:id/cancel", hb.Booking.CancelAppointment)
		}

		loyaltyGroup := api.Group("/loyalty")
		loyaltyGroup.Use(middleware.JWTAuthCustomerMiddleware())
		loyaltyGroup.GET("/balance", hb.Loyalty.GetBalance)

		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/appointments", hb.Admin.ListAppointments)
		adminGroup.PUT("/appointments/:id/status", hb.Admin.UpdateAppointmentStatus)
	}
}
