package main

import (
	"log"
	"os"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/worldwanderer/flightsearch/internal/handler"
	"github.com/worldwanderer/flightsearch/internal/ratelimit"
	"github.com/worldwanderer/flightsearch/internal/search"
)

type Config struct {
	Port              string
	RateLimitEnabled  bool
	RequestsPerSecond float64
	BurstSize         int
}

func main() {
	cfg := loadConfig()
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	validator := search.NewValidator()
	searchHandler := handler.NewSearchHandler(validator)

	api := e.Group("/api/v1")
	if cfg.RateLimitEnabled {
		limiter := ratelimit.NewClientLimiter(ratelimit.RateLimitConfig{
			RequestsPerSecond: cfg.RequestsPerSecond,
			BurstSize:         cfg.BurstSize,
		})
		api.Use(ratelimit.Middleware(limiter))
		log.Printf("Rate limiting enabled (%.1f req/s, burst %d)", cfg.RequestsPerSecond, cfg.BurstSize)
	} else {
		log.Println("Rate limiting disabled")
	}

	api.POST("/search/validate", searchHandler.Validate)
	api.GET("/search/last", searchHandler.LastSearch)
	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting flight search validation server on port %s", cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() Config {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		RateLimitEnabled:  getEnvBool("RATE_LIMIT_ENABLED", true),
		RequestsPerSecond: getEnvFloat("RATE_LIMIT_RPS", 10),
		BurstSize:         getEnvInt("RATE_LIMIT_BURST", 20),
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
