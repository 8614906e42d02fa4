package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/hyperpolymath/ambientops/internal/config"
	"github.com/hyperpolymath/ambientops/internal/controllers"
	"github.com/hyperpolymath/ambientops/internal/middleware"
	"github.com/hyperpolymath/ambientops/internal/routes"
	"github.com/hyperpolymath/ambientops/internal/services"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	// One store instance, shared by every consumer. Everything downstream
	// of it is a pure derivation.
	store := services.NewMetricsStore(cfg.StoreTTL())
	weather := services.NewWeatherService(store)
	forecasts := services.NewForecastService(store)
	themes := services.NewThemeRegistry()
	payloads := services.NewPayloadService(weather, themes)

	hub := services.NewWebSocketHub(payloads, cfg.BroadcastInterval())
	go hub.Run()

	ingest := services.NewIngestService(store, hub)

	collector := services.NewSystemCollector(store, cfg.CollectorInterval(), cfg.Collector.DiskPath)
	if cfg.Collector.Enabled {
		collector.Start()
	}

	r := gin.Default()
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))
	r.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter()))

	routes.RegisterWeatherRoutes(r,
		controllers.NewWeatherController(weather),
		controllers.NewForecastController(forecasts),
		controllers.NewAmbientController(payloads, cfg.Ambient.DefaultTheme),
		controllers.NewThemeController(themes))
	routes.RegisterMetricsRoutes(r,
		controllers.NewMetricsController(store),
		controllers.NewSystemController(collector))
	routes.RegisterIngestRoutes(r,
		controllers.NewIngestController(ingest),
		controllers.NewWebSocketController(hub))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down")
		collector.Stop()
		hub.Stop()
		os.Exit(0)
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
