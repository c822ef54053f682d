package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/sabitfardin/WeatherWear/internal/weather"
)

// AppConfig holds everything a run needs: the external API endpoints, the
// outbound HTTP timeout, the forecast window, the chart output path, the
// server port for serve mode, and the classifier thresholds. Former
// module-level constants live here so they are explicit configuration,
// not ambient globals.
type AppConfig struct {
	GeocodingURL string
	ForecastURL  string

	HTTPTimeout time.Duration

	// ForecastDays controls how many days the temperature chart covers.
	ForecastDays int

	ChartPath string

	Port string

	Thresholds weather.Thresholds
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{
		GeocodingURL: getenvDefault("GEOCODING_URL", "https://geocoding-api.open-meteo.com/v1/search"),
		ForecastURL:  getenvDefault("FORECAST_URL", "https://api.open-meteo.com/v1/forecast"),
		ChartPath:    getenvDefault("CHART_PATH", "temperature_chart.png"),
		Port:         getenvDefault("PORT", "8080"),
		ForecastDays: getenvInt("FORECAST_DAYS", 5),
	}

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.Thresholds = weather.Thresholds{
		WindyKmh: getenvFloat("WINDY_THRESHOLD_KMH", weather.DefaultThresholds.WindyKmh),
		WindyMph: getenvFloat("WINDY_THRESHOLD_MPH", weather.DefaultThresholds.WindyMph),
		HumidPct: getenvFloat("HUMID_THRESHOLD_PCT", weather.DefaultThresholds.HumidPct),
	}

	if cfg.ForecastDays < 1 {
		return nil, fmt.Errorf("FORECAST_DAYS must be at least 1")
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
