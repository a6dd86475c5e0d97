// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shivanand-hulikatti/hotel-reservation-ledger/internal/database"
	"github.com/Shivanand-hulikatti/hotel-reservation-ledger/internal/handler"
	"github.com/Shivanand-hulikatti/hotel-reservation-ledger/internal/ledger"
	"github.com/Shivanand-hulikatti/hotel-reservation-ledger/internal/repository"
	"github.com/Shivanand-hulikatti/hotel-reservation-ledger/internal/service"
	"go.uber.org/zap"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	hotelName := getEnv("HOTEL_NAME", "Hotel Dragon Ball")

	// ── 1. Choose storage ────────────────────────────────────────────────
	var store service.SnapshotStore
	switch storage := getEnv("STORAGE", "memory"); storage {
	case "memory":
		log.Info("✓ Using in-memory ledger, state is lost on exit")
	case "postgres":
		pool, err := database.NewPool(ctx, log)
		if err != nil {
			log.Fatal("database", zap.Error(err))
		}
		defer pool.Close()
		log.Info("✓ Connected to PostgreSQL")

		repo := repository.NewSnapshotRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal("database", zap.Error(err))
		}
		store = repo
	default:
		log.Fatal("unknown STORAGE, want memory or postgres", zap.String("storage", storage))
	}

	// ── 2. Wire up layers ────────────────────────────────────────────────
	svc := service.NewReservationService(ledger.New(hotelName), store, log)
	if err := svc.Load(ctx); err != nil {
		log.Fatal("load ledger", zap.Error(err))
	}
	h := handler.NewReservationHandler(svc)

	// ── 3. Build the router ───────────────────────────────────────────────
	r := handler.NewRouter(h, log)

	// ── 4. Start server with graceful shutdown ────────────────────────────
	port := getEnv("PORT", "8080")
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run in background goroutine so we can listen for shutdown signal.
	go func() {
		log.Info("✓ Server listening", zap.String("addr", "http://localhost:"+port), zap.String("hotel", hotelName))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("graceful shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
