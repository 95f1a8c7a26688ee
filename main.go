package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"drugdash/adapters/api"
	"drugdash/internal/config"
	"drugdash/internal/container"
	"drugdash/ui"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, appConfig); err != nil {
		stop()
		log.Fatalf("Server stopped: %v", err)
	}
	log.Println("Server stopped")
}

// run serves the dashboard and the JSON API until ctx is done. The store is
// closed on every return path.
func run(ctx context.Context, appConfig *config.Config) error {
	gin.SetMode(appConfig.Server.GinMode)

	appContainer, err := container.New(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create application container: %w", err)
	}
	if err := appContainer.Open(ctx); err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer appContainer.Close()

	if err := appContainer.Bootstrap(ctx); err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	server, err := ui.NewServer(appContainer.Dashboard, ui.Options{
		AssetsDir:     appConfig.Data.AssetsDir,
		SessionCookie: appConfig.Auth.SessionCookie,
		Metrics:       appContainer.Metrics,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	apiServer := &http.Server{
		Addr:    ":" + appConfig.Server.APIPort,
		Handler: api.NewRouter(appContainer.Dashboard, appContainer.Metrics),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Starting dashboard on port %s", appConfig.Server.Port)
		return server.Start(":" + appConfig.Server.Port)
	})
	g.Go(func() error {
		log.Printf("Starting JSON API on port %s", appConfig.Server.APIPort)
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	// pprof registers on the default mux
	if appConfig.Profiling.Enabled {
		go func() {
			log.Printf("Profiling server starting on :%s", appConfig.Profiling.Port)
			if err := http.ListenAndServe(":"+appConfig.Profiling.Port, nil); err != nil {
				log.Printf("pprof server failed: %v", err)
			}
		}()
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down servers")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return apiServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
