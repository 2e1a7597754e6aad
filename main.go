package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hostel-backend/config"
	"hostel-backend/controllers"
	"hostel-backend/routes"
	"hostel-backend/services"
	"hostel-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Every handler depends on the store: a failed connect is fatal.
	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("❌ Database connection failed: %v", err)
	}
	log.Println("✅ Connected to MySQL database")

	// Initialize services
	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db)
	userService := services.NewUserService(db)
	settingsService := services.NewSettingsService(db)
	testimonialService := services.NewTestimonialService(db)

	// Initialize controllers
	roomController := controllers.NewRoomController(roomService)
	bookingController := controllers.NewBookingController(bookingService)
	userController := controllers.NewUserController(userService)
	settingsController := controllers.NewSettingsController(settingsService)
	testimonialController := controllers.NewTestimonialController(testimonialService)
	healthController := controllers.NewHealthController(db)

	// Build router
	router := routes.SetupRouter(
		roomController,
		bookingController,
		userController,
		settingsController,
		testimonialController,
		healthController,
	)

	port := utils.EnvOrDefault("PORT", "5001")
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server running on http://localhost:%s", port)
		log.Printf("📊 API endpoints available at http://localhost:%s/api", port)
		log.Printf("🏥 Health check: http://localhost:%s/api/health", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("⚠️  Error closing database connection: %v", err)
		} else {
			log.Println("✅ Database connection closed")
		}
	}

	log.Println("✅ Server stopped gracefully")
}
