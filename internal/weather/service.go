package weather

import (
	"context"
	"errors"
	"fmt"
)

// Service orchestrates the gateway and the classification core for a
// single request. It holds no state between calls.
type Service struct {
	gateway    Gateway
	thresholds Thresholds
}

// NewService creates a new Service.
func NewService(gw Gateway, thresholds Thresholds) *Service {
	return &Service{
		gateway:    gw,
		thresholds: thresholds,
	}
}

// Locate resolves a city name through the gateway.
func (s *Service) Locate(ctx context.Context, city string) (Location, error) {
	loc, err := s.gateway.Geocode(ctx, city)
	if err != nil {
		if errors.Is(err, ErrNoMatch) {
			return Location{}, err
		}
		return Location{}, fmt.Errorf("geocoding lookup: %w", err)
	}
	return loc, nil
}

// Observe fetches the current weather for a location and classifies it.
func (s *Service) Observe(ctx context.Context, loc Location, units UnitSystem) (ConditionAnalysis, error) {
	obs, err := s.gateway.Current(ctx, loc.Latitude, loc.Longitude, units)
	if err != nil {
		return ConditionAnalysis{}, fmt.Errorf("current weather fetch: %w", err)
	}
	return s.thresholds.Classify(obs, units), nil
}

// Forecast fetches the daily forecast for a location.
func (s *Service) Forecast(ctx context.Context, loc Location, units UnitSystem, days int) ([]ForecastDay, error) {
	if days <= 0 {
		return nil, fmt.Errorf("days must be greater than zero")
	}
	fc, err := s.gateway.Forecast(ctx, loc.Latitude, loc.Longitude, units, days)
	if err != nil {
		return nil, fmt.Errorf("forecast fetch: %w", err)
	}
	return fc, nil
}

// Report bundles a full lookup-classify-recommend pass for one city; the
// HTTP API returns it as a single document.
type Report struct {
	Location       Location          `json:"location"`
	Analysis       ConditionAnalysis `json:"analysis"`
	Recommendation string            `json:"recommendation"`
	Summary        string            `json:"summary"`
}

// Report resolves a city, classifies its current weather, and attaches
// the recommendation and summary.
func (s *Service) Report(ctx context.Context, city string, units UnitSystem, env Context) (Report, error) {
	loc, err := s.Locate(ctx, city)
	if err != nil {
		return Report{}, err
	}

	analysis, err := s.Observe(ctx, loc, units)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Location:       loc,
		Analysis:       analysis,
		Recommendation: Recommend(analysis, env),
		Summary:        FormatSummary(loc, analysis),
	}, nil
}
