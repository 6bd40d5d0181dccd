package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/hostframe/weather-plugin/config"
	"github.com/hostframe/weather-plugin/forecast"
	"github.com/hostframe/weather-plugin/host"
	"github.com/hostframe/weather-plugin/logger"
	"github.com/hostframe/weather-plugin/router"
	"github.com/hostframe/weather-plugin/weatherplugin"
)

func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Construct the plugin module
	generator := forecast.NewGenerator(rand.NewSource(time.Now().UnixNano()))
	module := weatherplugin.New(generator, cfg.Plugin.SeedForecastDays)

	// Drive the lifecycle: initialize, register services, register endpoints.
	capabilities := host.NewCapabilityHost(log)
	if err := module.Initialize(context.Background(), capabilities); err != nil {
		log.Fatalf("Failed to initialize plugin: %v", err)
	}

	registry := host.NewRegistry()
	if err := module.RegisterServices(registry); err != nil {
		log.Fatalf("Failed to register plugin services: %v", err)
	}

	r, err := router.SetupRouter(router.Dependencies{
		Config: cfg,
		Module: module,
		Logger: log,
	})
	if err != nil {
		log.Fatalf("Failed to register plugin endpoints: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server shutdown error: %v", err)
	}

	if err := module.Dispose(); err != nil {
		log.Errorf("Plugin dispose error: %v", err)
	}
}
