// Package main implements the entry point for the partydeck API server,
// which turns user-supplied or AI-generated term lists into print-ready
// party game card decks.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/partydeck/partydeck-api/internal/api"
	"github.com/partydeck/partydeck-api/internal/api/middleware"
	"github.com/partydeck/partydeck-api/internal/config"
	"github.com/partydeck/partydeck-api/internal/deck"
	"github.com/partydeck/partydeck-api/internal/export"
	"github.com/partydeck/partydeck-api/internal/generation"
	"github.com/partydeck/partydeck-api/internal/platform/gemini"
	"github.com/partydeck/partydeck-api/internal/platform/logger"
	"github.com/partydeck/partydeck-api/internal/platform/memory"
	"github.com/partydeck/partydeck-api/internal/service"
	"github.com/partydeck/partydeck-api/internal/supply"
)

func main() {
	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := runServer(cfg, appLogger); err != nil {
		appLogger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up logging.
// Returns the loaded config, the application logger, and any error.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"provider_configured", cfg.LLM.GeminiAPIKey != "")

	return cfg, appLogger, nil
}

// buildProvider creates the Gemini term provider when an API key is
// configured. A nil provider is a supported configuration: generation then
// falls back to cycling the user's own terms.
func buildProvider(ctx context.Context, cfg *config.Config, appLogger *slog.Logger) (generation.TermProvider, error) {
	if cfg.LLM.GeminiAPIKey == "" {
		appLogger.Info("no Gemini API key configured, term augmentation disabled")
		return nil, nil
	}

	provider, err := gemini.NewProvider(ctx, appLogger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini provider: %w", err)
	}

	return provider, nil
}

// runServer wires the application together and serves HTTP until the process
// receives an interrupt or termination signal.
func runServer(cfg *config.Config, appLogger *slog.Logger) error {
	ctx := context.Background()

	provider, err := buildProvider(ctx, cfg, appLogger)
	if err != nil {
		return err
	}

	deckService, err := service.NewDeckService(
		supply.NewNegotiator(provider, appLogger),
		deck.NewAssembler(),
		memory.NewDeckStore(),
		appLogger,
	)
	if err != nil {
		return fmt.Errorf("failed to create deck service: %w", err)
	}

	handler := api.NewDeckHandler(deckService, export.NewRenderer(), cfg.Generation)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TraceMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Route("/api", func(r chi.Router) {
		r.Post("/decks", handler.GenerateDeck)
		r.Get("/decks", handler.ListDecks)
		r.Get("/decks/{deckID}", handler.GetDeck)
		r.Get("/decks/{deckID}/print", handler.PrintDeck)
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	shutdownCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-shutdownCtx.Done():
	}

	appLogger.Info("shutting down")

	drainCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(drainCtx)
}
