package main

import (
	"context"   // Context for startup and shutdown
	"errors"    // Server closed detection
	"net/http"  // HTTP server
	"os"        // Signal types
	"os/signal" // Shutdown on interrupt
	"syscall"   // SIGTERM
	"time"      // Server timeouts

	"worldsporta/internal/api"    // Custom package for HTTP handlers
	"worldsporta/internal/assist" // Custom package for the AI gateway
	"worldsporta/internal/config" // Custom package for configuration
	"worldsporta/internal/game"   // Custom package for the mini-game
	"worldsporta/internal/state"  // Custom package for application state
	"worldsporta/internal/web"    // Custom package for templates

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	// Setup the text-generation gateway; without a key it only returns fallback text
	var gen assist.Generator
	genAI, err := assist.NewGenAI(context.Background(), cfg.APIKey, cfg.AIModel)
	if err == nil {
		gen = genAI
	} else if !errors.Is(err, assist.ErrNoAPIKey) {
		logrus.WithError(err).Error("AI backend unavailable")
	}
	gateway := assist.NewGateway(gen, cfg.AITimeout)
	if !gateway.Available() {
		logrus.Warn("No AI backend configured, summaries and analyses will use fallback text")
	}

	// Seed the application state and the game session
	st := state.New(state.WithSummarizer(gateway))
	session := game.NewSession()

	tmpl, err := web.Templates()
	if err != nil {
		logrus.Fatalf("failed to load templates: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	api.NewRouter(api.Deps{State: st, Assist: gateway, Game: session, Templates: tmpl}, r)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.AITimeout + 15*time.Second, // Analysis calls block the response
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.Info("Server running on " + cfg.AppPort) // Log server start
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	// Wait for interrupt, then drain requests and stop the game ticker
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
	session.Close()
	st.WaitSummaries()
	logrus.Info("Server stopped")
}
