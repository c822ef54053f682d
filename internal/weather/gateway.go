package weather

import (
	"context"
	"errors"
)

// ErrNoMatch is returned by Geocode when the city name resolves to nothing.
var ErrNoMatch = errors.New("no location found")

// Gateway abstracts the external weather service. The core consumes these
// shapes but does not implement them; the Open-Meteo client in
// internal/weather/providers does.
type Gateway interface {
	// Geocode resolves a city name to a Location, or ErrNoMatch.
	Geocode(ctx context.Context, city string) (Location, error)

	// Current fetches the current observation for a coordinate pair, with
	// values already expressed in the requested unit system.
	Current(ctx context.Context, lat, lon float64, units UnitSystem) (RawObservation, error)

	// Forecast fetches the next days of daily max/min temperatures,
	// ordered by date ascending.
	Forecast(ctx context.Context, lat, lon float64, units UnitSystem, days int) ([]ForecastDay, error)
}
