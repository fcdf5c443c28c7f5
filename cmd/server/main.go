package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sweet-shop/backend/internal/config"
	"github.com/sweet-shop/backend/internal/handlers"
	"github.com/sweet-shop/backend/internal/middleware"
	"github.com/sweet-shop/backend/internal/repository"
	"github.com/sweet-shop/backend/internal/service"
	"github.com/sweet-shop/backend/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting sweet shop api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"store", cfg.Store.Kind,
		"log_level", cfg.LogLevel,
	)

	// Initialize the catalog store
	repo, err := repository.NewStore(cfg.Store.Kind, cfg.Store.RedisURL, cfg.Store.KeyPrefix)
	if err != nil {
		log.Error("failed to initialize catalog store", "error", err)
		os.Exit(1)
	}
	if closer, ok := repo.(io.Closer); ok {
		defer closer.Close()
	}

	if cfg.Store.Seed {
		if err := repository.Seed(context.Background(), repo); err != nil {
			log.Error("failed to seed catalog", "error", err)
			os.Exit(1)
		}
		log.Info("demo catalog seeded")
	}

	// Initialize services
	sweetService := service.NewSweetService(repo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	sweetHandler := handlers.NewSweetHandler(sweetService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/sweets", func(r chi.Router) {
			// Public catalog reads
			r.Get("/", sweetHandler.List)
			r.Get("/search", sweetHandler.Search)
			r.Get("/{sweetId}", sweetHandler.Get)

			// Any valid API key may purchase
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireUser(cfg.Auth))
				r.Post("/{sweetId}/purchase", sweetHandler.Purchase)
			})

			// Catalog management requires an admin key
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin(cfg.Auth))
				r.Post("/", sweetHandler.Create)
				r.Put("/{sweetId}", sweetHandler.Update)
				r.Delete("/{sweetId}", sweetHandler.Delete)
				r.Post("/{sweetId}/restock", sweetHandler.Restock)
			})
		})
	})

	// Envelope-shaped fallback for unknown routes
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": fmt.Sprintf("Route %s not found", req.URL.Path),
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
