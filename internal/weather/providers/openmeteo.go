package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sabitfardin/WeatherWear/internal/weather"
	"github.com/sony/gobreaker"
)

// OpenMeteo implements the weather.Gateway interface against the
// Open-Meteo geocoding and forecast APIs. Neither endpoint requires an
// API key. Each upstream host gets its own circuit breaker.
type OpenMeteo struct {
	client *http.Client

	geocodingURL string
	forecastURL  string

	geocodingCircuit *gobreaker.CircuitBreaker
	forecastCircuit  *gobreaker.CircuitBreaker
}

var _ weather.Gateway = (*OpenMeteo)(nil)

// NewOpenMeteo creates a gateway talking to the given base URLs. The URLs
// come from configuration so tests can point them at a local server.
func NewOpenMeteo(client *http.Client, geocodingURL, forecastURL string) *OpenMeteo {
	return &OpenMeteo{
		client:       client,
		geocodingURL: geocodingURL,
		forecastURL:  forecastURL,
		geocodingCircuit: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "openmeteo-geocoding",
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     2 * time.Minute,
		}),
		forecastCircuit: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "openmeteo-forecast",
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     2 * time.Minute,
		}),
	}
}

// Geocode resolves a city name via the Open-Meteo geocoding API and
// returns the best match, or weather.ErrNoMatch when there is none.
func (g *OpenMeteo) Geocode(ctx context.Context, city string) (weather.Location, error) {
	values := url.Values{}
	values.Set("name", city)
	values.Set("count", "1")
	values.Set("language", "en")
	values.Set("format", "json")

	resp, err := doRequest(ctx, g.client, g.geocodingCircuit, g.geocodingURL+"?"+values.Encode())
	if err != nil {
		return weather.Location{}, fmt.Errorf("geocoding: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Results []struct {
			Name      string  `json:"name"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Country   string  `json:"country"`
			Timezone  string  `json:"timezone"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Location{}, fmt.Errorf("geocoding: decode response: %w", err)
	}

	if len(payload.Results) == 0 {
		return weather.Location{}, fmt.Errorf("%w for %q", weather.ErrNoMatch, city)
	}

	first := payload.Results[0]
	return weather.Location{
		Name:      first.Name,
		Latitude:  first.Latitude,
		Longitude: first.Longitude,
		Country:   first.Country,
		Timezone:  first.Timezone,
	}, nil
}

// Current fetches the current observation for a coordinate pair. The API
// is asked to return values already in the requested units, so nothing
// downstream converts.
func (g *OpenMeteo) Current(ctx context.Context, lat, lon float64, units weather.UnitSystem) (weather.RawObservation, error) {
	values := url.Values{}
	values.Set("latitude", formatCoord(lat))
	values.Set("longitude", formatCoord(lon))
	values.Set("current", "temperature_2m,relative_humidity_2m,apparent_temperature,precipitation,weather_code,wind_speed_10m")
	values.Set("timezone", "auto")
	values.Set("temperature_unit", units.TemperatureUnit())
	values.Set("windspeed_unit", units.WindSpeedUnit())

	resp, err := doRequest(ctx, g.client, g.forecastCircuit, g.forecastURL+"?"+values.Encode())
	if err != nil {
		return weather.RawObservation{}, fmt.Errorf("current weather: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Current *weather.RawObservation `json:"current"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.RawObservation{}, fmt.Errorf("current weather: decode response: %w", err)
	}

	if payload.Current == nil {
		return weather.RawObservation{}, fmt.Errorf("current weather: no data returned")
	}

	return *payload.Current, nil
}

// Forecast fetches daily max/min temperatures for the next days, ordered
// by date ascending. Days where the API omits a value are skipped.
func (g *OpenMeteo) Forecast(ctx context.Context, lat, lon float64, units weather.UnitSystem, days int) ([]weather.ForecastDay, error) {
	values := url.Values{}
	values.Set("latitude", formatCoord(lat))
	values.Set("longitude", formatCoord(lon))
	values.Set("daily", "temperature_2m_max,temperature_2m_min")
	values.Set("timezone", "auto")
	values.Set("temperature_unit", units.TemperatureUnit())
	values.Set("forecast_days", strconv.Itoa(days))

	resp, err := doRequest(ctx, g.client, g.forecastCircuit, g.forecastURL+"?"+values.Encode())
	if err != nil {
		return nil, fmt.Errorf("forecast: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Daily struct {
			Time     []string   `json:"time"`
			MaxTemps []*float64 `json:"temperature_2m_max"`
			MinTemps []*float64 `json:"temperature_2m_min"`
		} `json:"daily"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("forecast: decode response: %w", err)
	}

	daily := payload.Daily
	if len(daily.Time) == 0 {
		return nil, fmt.Errorf("forecast: no daily data returned")
	}

	forecast := make([]weather.ForecastDay, 0, len(daily.Time))
	for i, day := range daily.Time {
		if i >= len(daily.MaxTemps) || i >= len(daily.MinTemps) {
			break
		}
		if daily.MaxTemps[i] == nil || daily.MinTemps[i] == nil {
			continue
		}

		date, err := time.Parse("2006-01-02", day)
		if err != nil {
			continue
		}

		forecast = append(forecast, weather.ForecastDay{
			Date:    date,
			MaxTemp: *daily.MaxTemps[i],
			MinTemp: *daily.MinTemps[i],
		})
	}

	return forecast, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
