package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/sabitfardin/WeatherWear/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/recommendation", func(c *fiber.Ctx) error {
		var req recommendationQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		report, err := service.Report(c.Context(), req.City, weather.ParseUnitSystem(req.Units), weather.ParseContext(req.Context))
		if err != nil {
			if errors.Is(err, weather.ErrNoMatch) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusBadGateway, "failed to fetch weather data")
		}

		return c.JSON(report)
	})

	v1.Get("/forecast", func(c *fiber.Ctx) error {
		var req forecastQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		units := weather.ParseUnitSystem(req.Units)

		loc, err := service.Locate(c.Context(), req.City)
		if err != nil {
			if errors.Is(err, weather.ErrNoMatch) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusBadGateway, "failed to resolve location")
		}

		forecast, err := service.Forecast(c.Context(), loc, units, req.Days)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "failed to fetch forecast data")
		}

		return c.JSON(fiber.Map{
			"location": loc,
			"units":    units,
			"days":     forecast,
		})
	})
}

// recommendationQuery holds query parameters for the recommendation
// endpoint. Context and units fall back the same way the CLI prompts do.
type recommendationQuery struct {
	City    string `validate:"required"`
	Context string `validate:"omitempty,oneof=indoor outdoor"`
	Units   string `validate:"omitempty,oneof=metric imperial"`
}

func (r *recommendationQuery) bind(c *fiber.Ctx) error {
	r.City = c.Query("city")
	r.Context = c.Query("context")
	r.Units = c.Query("units")
	return validate.Struct(r)
}

// forecastQuery holds query parameters for the forecast endpoint.
type forecastQuery struct {
	City  string `validate:"required"`
	Units string `validate:"omitempty,oneof=metric imperial"`
	Days  int    `validate:"min=1,max=7"`
}

func (f *forecastQuery) bind(c *fiber.Ctx) error {
	f.City = c.Query("city")
	f.Units = c.Query("units")

	f.Days = 5
	if daysStr := c.Query("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return errors.New("days must be an integer")
		}
		f.Days = days
	}

	return validate.Struct(f)
}
