package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"drugdash/adapters/api"
	"drugdash/internal/config"
	"drugdash/internal/container"

	"github.com/joho/godotenv"
)

// Standalone JSON API server without the HTML dashboard
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		stop()
		log.Fatalf("API server stopped: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	c, err := container.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create application container: %w", err)
	}
	if err := c.Open(ctx); err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer c.Close()

	if err := c.Bootstrap(ctx); err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.APIPort,
		Handler:           api.NewRouter(c.Dashboard, c.Metrics),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("API shutdown failed: %v", err)
		}
	}()

	log.Printf("Starting API server on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
