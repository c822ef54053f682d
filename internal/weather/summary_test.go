package weather

import (
	"strings"
	"testing"
)

func TestFormatSummaryMetric(t *testing.T) {
	loc := Location{Name: "Paris", Country: "France"}
	obs := RawObservation{
		Temperature: floatPtr(3),
		FeelsLike:   floatPtr(-1.2),
		Humidity:    floatPtr(80),
		WindSpeed:   floatPtr(25),
		WeatherCode: intPtr(61),
	}

	got := FormatSummary(loc, Classify(obs, UnitsMetric))

	want := strings.Join([]string{
		"Weather summary for Paris, France:",
		"  Condition     : rainy (cold)",
		"  Temperature   : 3.0°C",
		"  Feels like    : -1.2°C",
		"  Humidity      : 80%",
		"  Wind speed    : 25 km/h",
	}, "\n")

	if got != want {
		t.Errorf("FormatSummary =\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatSummaryImperialSymbols(t *testing.T) {
	loc := Location{Name: "Buffalo", Country: "United States"}
	obs := RawObservation{
		Temperature: floatPtr(75.5),
		WindSpeed:   floatPtr(10),
	}

	got := FormatSummary(loc, Classify(obs, UnitsImperial))

	if !strings.Contains(got, "75.5°F") {
		t.Errorf("expected Fahrenheit symbol in:\n%s", got)
	}
	if !strings.Contains(got, "10 mph") {
		t.Errorf("expected mph symbol in:\n%s", got)
	}
}

func TestFormatSummaryAllAbsentRendersNA(t *testing.T) {
	loc := Location{Name: "Nowhere", Country: "XX"}

	got := FormatSummary(loc, Classify(RawObservation{}, UnitsImperial))

	for _, line := range []string{
		"  Condition     : unknown weather (unknown)",
		"  Temperature   : N/A",
		"  Feels like    : N/A",
		"  Humidity      : N/A",
		"  Wind speed    : N/A",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("missing line %q in:\n%s", line, got)
		}
	}
}
