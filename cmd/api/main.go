package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lobbykit/visitor-api/internal/infra/database"
	"github.com/lobbykit/visitor-api/internal/infra/http/handlers"
	metricsmw "github.com/lobbykit/visitor-api/internal/infra/http/middleware"
)

func main() {
	godotenv.Load()

	cfg, err := database.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	db, err := database.NewDBConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
	defer db.Close()

	if err := database.EnsureVisitorsTable(db, cfg.Dialect); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	visitorRepo := database.NewVisitorRepository(db, cfg.Dialect)
	visitorHandler := handlers.NewVisitorHandler(visitorRepo)
	healthHandler := handlers.NewHealthHandler(db)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(metricsmw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Route("/api/visitors", func(r chi.Router) {
		r.Post("/", visitorHandler.Create)
		r.Get("/", visitorHandler.GetAll)
		r.Get("/{id}", visitorHandler.GetByID)
		r.Put("/{id}", visitorHandler.Update)
		r.Delete("/{id}", visitorHandler.Delete)
	})
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("Server is running on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
