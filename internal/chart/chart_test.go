package chart

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sabitfardin/WeatherWear/internal/weather"
)

func sampleForecast(days int) []weather.ForecastDay {
	base := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	out := make([]weather.ForecastDay, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, weather.ForecastDay{
			Date:    base.AddDate(0, 0, i),
			MaxTemp: 20 + float64(i),
			MinTemp: 10 + float64(i),
		})
	}
	return out
}

func TestRenderWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	r := NewRenderer(path)

	if err := r.Render(sampleForecast(5), weather.UnitsMetric); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart file not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("chart file is empty")
	}

	// PNG magic bytes.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read chart file: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Error("output does not look like a PNG")
	}
}

func TestRenderRejectsShortForecast(t *testing.T) {
	r := NewRenderer(filepath.Join(t.TempDir(), "chart.png"))

	if err := r.Render(sampleForecast(1), weather.UnitsMetric); err == nil {
		t.Fatal("expected error for a single-day forecast")
	}
	if err := r.Render(nil, weather.UnitsMetric); err == nil {
		t.Fatal("expected error for an empty forecast")
	}
}
