package main

import (
	"log"
	"os"
	"strings"
	"time"
	"travelplanner/handlers"
	"travelplanner/services"
	"travelplanner/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file (ignored in production where env vars are set directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found — using environment variables")
	}

	// Initialize Amadeus service
	services.InitAmadeus()

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	sessions := session.NewManager(services.GetAmadeusClient(), services.NewGenerator(nil), 30*time.Minute)
	defer sessions.Close()

	h := handlers.NewHandler(sessions)

	r := gin.Default()

	// Trusted proxies (Railway sits behind a proxy)
	r.SetTrustedProxies([]string{"0.0.0.0/0"})

	// CORS — allow configured frontend origins
	frontendURLs := os.Getenv("FRONTEND_URL")
	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if frontendURLs != "" {
		for _, u := range strings.Split(frontendURLs, ",") {
			u = strings.TrimSpace(u)
			if u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Routes
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthHandler)
		api.POST("/receipt", handlers.ReceiptHandler)

		api.POST("/sessions", h.CreateSession)
		api.GET("/sessions/:id", h.GetSession)
		api.POST("/sessions/:id/search", h.Search)
		api.POST("/sessions/:id/select", h.SelectDestination)
		api.POST("/sessions/:id/back", h.Back)
		api.POST("/sessions/:id/tab", h.SetTab)
		api.POST("/sessions/:id/booking/open", h.OpenBooking)
		api.PATCH("/sessions/:id/booking/form", h.UpdateBookingForm)
		api.POST("/sessions/:id/booking/submit", h.SubmitBooking)
		api.POST("/sessions/:id/booking/cancel", h.CancelBooking)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Travel Planner backend starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
