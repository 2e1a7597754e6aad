package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hostel-backend/controllers"
	"hostel-backend/middleware"
	"hostel-backend/utils"
)

func corsOrigin() string {
	return utils.EnvOrDefault("CORS_ORIGIN", "http://localhost:5173")
}

// SetupRouter wires the controller instances into the /api surface. The
// router owns no state of its own; everything stateful arrives injected.
func SetupRouter(
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	uc *controllers.UserController,
	sc *controllers.SettingsController,
	tc *controllers.TestimonialController,
	hc *controllers.HealthController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin()},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/:id", rc.GetRoomByID)
			rooms.POST("/availability", rc.CheckAvailability)
		}

		api.GET("/room-types", rc.GetRoomTypes)

		api.POST("/bookings", bc.CreateBooking)

		api.GET("/users/:id", uc.GetUserByID)

		api.GET("/settings", sc.GetSettings)

		testimonials := api.Group("/testimonials")
		{
			testimonials.GET("", tc.GetTestimonials)
			testimonials.GET("/featured", tc.GetFeaturedTestimonials)
			testimonials.GET("/random", tc.GetRandomTestimonials)
			testimonials.GET("/room/:roomId", tc.GetTestimonialsByRoom)
		}

		api.GET("/health", hc.Check)
	}

	return r
}
