package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/sabitfardin/WeatherWear/internal/api/http"
	"github.com/sabitfardin/WeatherWear/internal/chart"
	"github.com/sabitfardin/WeatherWear/internal/config"
	"github.com/sabitfardin/WeatherWear/internal/weather"
	"github.com/sabitfardin/WeatherWear/internal/weather/providers"
)

func main() {
	serve := flag.Bool("serve", false, "run the HTTP API instead of the interactive prompt")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound gateway calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	gateway := providers.NewOpenMeteo(httpClient, cfg.GeocodingURL, cfg.ForecastURL)
	service := weather.NewService(gateway, cfg.Thresholds)

	if *serve {
		runServer(cfg, service)
		return
	}

	runInteractive(cfg, service, chart.NewRenderer(cfg.ChartPath))
}

// runInteractive walks one city/context/units request to completion:
// prompt, geocode, fetch, classify, recommend, chart.
func runInteractive(cfg *config.AppConfig, service *weather.Service, renderer *chart.Renderer) {
	fmt.Println("=== WeatherWear (Open-Meteo Edition) ===")
	fmt.Println()

	in := bufio.NewReader(os.Stdin)

	city := prompt(in, "Enter your city name (e.g., Buffalo, London, Dhaka): ")
	if city == "" {
		fmt.Println("City name is required. Exiting.")
		return
	}

	contextInput := strings.ToLower(prompt(in, "Are you going indoor or outdoor? (type 'indoor' or 'outdoor'): "))
	if contextInput != "indoor" && contextInput != "outdoor" {
		fmt.Println("Context not recognized. Defaulting to 'outdoor'.")
	}
	env := weather.ParseContext(contextInput)

	unitInput := strings.ToLower(prompt(in, "Use metric (Celsius) or imperial (Fahrenheit)? [metric/imperial, default=metric]: "))
	units := weather.ParseUnitSystem(unitInput)

	ctx := context.Background()

	fmt.Println("\nLooking up your location...")
	fmt.Println()

	loc, err := service.Locate(ctx, city)
	if err != nil {
		fmt.Printf("Failed to resolve city: %v\n", err)
		return
	}

	fmt.Printf("Found: %s, %s (lat=%v, lon=%v)\n", loc.Name, loc.Country, loc.Latitude, loc.Longitude)
	fmt.Println("Fetching current weather...")
	fmt.Println()

	analysis, err := service.Observe(ctx, loc, units)
	if err != nil {
		fmt.Printf("Failed to fetch weather data: %v\n", err)
		return
	}

	fmt.Println(weather.FormatSummary(loc, analysis))
	fmt.Println("\nClothing Recommendation:")
	fmt.Println(weather.Recommend(analysis, env))

	// Chart failures are reported but do not abort the run.
	fmt.Printf("\nGenerating %d-day temperature chart...\n", cfg.ForecastDays)
	forecast, err := service.Forecast(ctx, loc, units, cfg.ForecastDays)
	if err != nil {
		fmt.Printf("Could not generate temperature chart: %v\n", err)
	} else if err := renderer.Render(forecast, units); err != nil {
		fmt.Printf("Could not generate temperature chart: %v\n", err)
	} else {
		fmt.Printf("Temperature chart saved as %s\n", renderer.Path())
	}

	fmt.Println("\nThank you for using WeatherWear!")
}

func prompt(in *bufio.Reader, question string) string {
	fmt.Print(question)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// runServer exposes the same core over HTTP with graceful shutdown.
func runServer(cfg *config.AppConfig, service *weather.Service) {
	app := fiber.New(fiber.Config{
		AppName:               "weatherwear",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weatherwear",
		})
	})

	httpapi.RegisterRoutes(app, service)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
