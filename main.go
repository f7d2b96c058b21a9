package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/bffgym/pos-be/config"
	"github.com/bffgym/pos-be/models"
	"github.com/bffgym/pos-be/routes"
	"github.com/bffgym/pos-be/services"
	"github.com/bffgym/pos-be/storage"
	"github.com/bffgym/pos-be/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Connect to the local database and seed the timetable
	config.ConnectDatabase()
	sqlDB, err := config.GetSQLDB()
	if err != nil {
		log.Fatal("Failed to get database handle:", err)
	}
	if err := config.RunMigrations(sqlDB); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create default admin user if it doesn't exist
	createDefaultAdmin()

	// WebSocket hub doubles as the render observer: the UI redraws when told
	config.InitializeWebSocketHub()
	observer := websocket.NewObserver(config.WSHub)

	store := storage.NewGormStore(config.DB)

	queue, err := services.NewDurableQueue(store)
	if err != nil {
		log.Fatal("Failed to load pending events:", err)
	}
	if n := queue.Len(); n > 0 {
		log.Printf("Recovered %d undelivered event(s) from a previous run", n)
	}

	sink := services.NewWebhookSink(
		os.Getenv("WEBHOOK_URL"),
		os.Getenv("WEBHOOK_SECRET"),
		sendTimeout(),
	)
	sink.AssumeOpaqueOK = os.Getenv("ASSUME_OPAQUE_OK") == "true"

	pump := services.NewDeliveryPump(queue, sink, observer)

	ledger, err := services.NewLedger(store, queue, pump, observer)
	if err != nil {
		log.Fatal("Failed to load ledger:", err)
	}

	var slots []models.SessionSlot
	if err := config.DB.Order("day_order, slot_order").Find(&slots).Error; err != nil {
		log.Fatal("Failed to load session timetable:", err)
	}
	sessions := services.NewSessionService(store, slots)

	// Drain anything left over from the last run, then keep retrying in
	// the background
	pump.Kick()
	go pump.RunRetryLoop(context.Background(), 30*time.Second)

	// Setup routes
	r := routes.SetupRoutes(routes.Deps{
		Ledger:      ledger,
		Sessions:    sessions,
		Queue:       queue,
		Pump:        pump,
		AuthService: services.NewAuthService(),
		Hub:         config.WSHub,
	})

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func sendTimeout() time.Duration {
	if raw := os.Getenv("SEND_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 10 * time.Second
}

func createDefaultAdmin() {
	var count int64
	config.DB.Model(&models.Staff{}).Where("role = ?", models.RoleAdmin).Count(&count)

	if count == 0 {
		authService := services.NewAuthService()
		adminEmail := os.Getenv("ADMIN_EMAIL")
		adminPassword := os.Getenv("ADMIN_PASSWORD")

		if adminEmail == "" {
			adminEmail = "admin@bffgym.com"
		}
		if adminPassword == "" {
			adminPassword = "admin123"
		}

		_, err := authService.CreateStaff(adminEmail, adminPassword, "Administrator", models.RoleAdmin)
		if err != nil {
			log.Printf("Failed to create default admin: %v", err)
		} else {
			log.Printf("Default admin created with email: %s", adminEmail)
		}
	}
}
