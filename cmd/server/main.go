package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/togetai/feedback-api/internal/config"
	"github.com/togetai/feedback-api/internal/handlers"
	"github.com/togetai/feedback-api/internal/mailer"
	"github.com/togetai/feedback-api/internal/routes"
	"github.com/togetai/feedback-api/internal/store"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// Select the record store: Postgres when configured, JSON file otherwise
	var st store.Store
	if cfg.PostgresURI != "" {
		log.Printf("Connecting to PostgreSQL...")
		pg, err := store.NewPostgresStore(cfg.PostgresURI)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL:", err)
		}
		st = pg
		log.Println("✅ Connected to PostgreSQL")
	} else {
		st = store.NewFileStore(cfg.FeedbackFile)
		log.Printf("📝 Feedback data saved to: %s", cfg.FeedbackFile)
	}
	defer st.Close()

	if err := st.Init(context.Background()); err != nil {
		log.Fatal("Failed to initialize feedback store:", err)
	}

	// Welcome emails degrade to disabled when the API key is missing
	var m handlers.Mailer
	if cfg.ResendAPIKey != "" {
		m = mailer.NewClient(cfg.ResendAPIKey, cfg.EmailFrom)
		log.Println("✅ Resend mailer configured")
	} else {
		log.Println("Warning: RESEND_API_KEY not set. Welcome emails will not be sent")
	}

	if cfg.AdminAPIKey == "" {
		log.Println("⚠️  WARNING: ADMIN_API_KEY not set. Admin endpoints are unauthenticated")
	}

	h := handlers.NewHandler(st, m)

	// Setup router
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Admin-Key"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	routes.SetupRoutes(r, h, cfg.AdminAPIKey)

	log.Println("📋 Registered routes:")
	log.Println("  POST   /api/submit-feedback")
	log.Println("  GET    /api/feedback")
	log.Println("  GET    /api/feedback/stats")
	log.Println("  DELETE /api/feedback/{id}")
	log.Println("  GET    /api/health")

	log.Printf("🚀 Feedback API running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
