package routes

import (
	"net/http"
	"time"

	"salonapi/handlers"
	"salonapi/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers and the token verifier for route
// registration.
type HandlerBundle struct {
	Auth     *handlers.AuthHandler
	Staff    *handlers.StaffHandler
	Services *handlers.ServicesHandler
	Booking  *handlers.BookingHandler
	Leaves   *handlers.LeaveHandler
	Verifier middleware.TokenVerifier
}

// RegisterAuthRoutes registers registration and profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)

		// Protected routes (Require Authentication)
		api.Use(middleware.FirebaseAuth(hb.Verifier))
		api.POST("/login", hb.Auth.Login)
		api.GET("/user/:uid", hb.Auth.GetUserDetails)
	}
}

// RegisterServicesRoutes registers the public service catalog endpoints.
func RegisterServicesRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("/categories", hb.Services.GetCategories)
		api.GET("/category/:categoryId", hb.Services.GetCategoryByID)
		api.GET("/category/:categoryId/service/:serviceId", hb.Services.GetServiceByID)
		api.GET("/salon/:salonId", hb.Services.GetSalonServices)
	}
}

// RegisterStaffRoutes registers the public staff directory endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/staff")
	{
		api.GET("/salon/:salonId", hb.Staff.GetStaffBySalon)
		api.GET("/:staffId", hb.Staff.GetStaffByID)
	}
}

// RegisterBookingRoutes registers the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.Use(middleware.FirebaseAuth(hb.Verifier))
		api.GET("/staff/:staffId", hb.Booking.GetStaffBookings)
		api.POST("", hb.Booking.CreateBooking)
		api.PATCH("/staff/:staffId/booking/:bookingId", hb.Booking.UpdateBookingStatus)
	}
}

// RegisterLeavesRoutes registers the staff leave endpoints.
func RegisterLeavesRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/leaves")
	{
		api.Use(middleware.FirebaseAuth(hb.Verifier))
		api.GET("/staff/:staffId", hb.Leaves.GetStaffLeaves)
		api.POST("", hb.Leaves.CreateLeave)
		api.PATCH("/staff/:staffId/leave/:leaveId", hb.Leaves.UpdateLeaveStatus)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Salon API"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterServicesRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterLeavesRoutes(r, hb)
	RegisterHealthRoute(r)
}
