package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dabeerhasan15/sounds/internal/adapters/rest"
	"github.com/dabeerhasan15/sounds/internal/adapters/soundfacts"
	"github.com/dabeerhasan15/sounds/internal/config"
	"github.com/dabeerhasan15/sounds/internal/core/services"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: failed to load configuration: %v", err)
	}

	// 2. Initialize "Driven" Adapter (The Tool)
	client := soundfacts.NewClient(cfg.AnalysisURL, cfg.RequestTimeout)

	// 3. Initialize Core Logic (The Driver)
	// The compiler guarantees that client implements ports.ReportSource.
	svc := services.NewOrchestrator(client)

	// 4. Initialize "Driving" Adapter (The Interface)
	handler := rest.NewHandler(svc)

	// 5. Start the Server
	log.Println("------------------------------------------------")
	log.Printf("🎶 SoundFacts API is running on http://localhost:%s", cfg.Port)
	log.Printf("   Analysis endpoint: %s", cfg.AnalysisURL)
	log.Println("------------------------------------------------")

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatal(err)
		}
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}
