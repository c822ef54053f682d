// Package chart renders the daily forecast into a temperature trend PNG.
package chart

import (
	"fmt"
	"os"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/sabitfardin/WeatherWear/internal/weather"
)

// Renderer writes temperature trend charts to a fixed output path.
type Renderer struct {
	path string
}

// NewRenderer creates a Renderer writing to path.
func NewRenderer(path string) *Renderer {
	return &Renderer{path: path}
}

// Path returns the output path charts are written to.
func (r *Renderer) Path() string {
	return r.path
}

// Render draws max and min temperature series over the forecast days and
// writes the PNG. The chart engine needs at least two points per series,
// so shorter forecasts are an error.
func (r *Renderer) Render(forecast []weather.ForecastDay, units weather.UnitSystem) error {
	if len(forecast) < 2 {
		return fmt.Errorf("not enough forecast data to generate chart")
	}

	dates := make([]time.Time, 0, len(forecast))
	maxTemps := make([]float64, 0, len(forecast))
	minTemps := make([]float64, 0, len(forecast))
	for _, day := range forecast {
		dates = append(dates, day.Date)
		maxTemps = append(maxTemps, day.MaxTemp)
		minTemps = append(minTemps, day.MinTemp)
	}

	graph := chart.Chart{
		Title: fmt.Sprintf("%d-Day Temperature Forecast", len(forecast)),
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: fmt.Sprintf("Temperature (%s)", units.TempSymbol()),
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Max Temp",
				XValues: dates,
				YValues: maxTemps,
				Style: chart.Style{
					StrokeWidth: 2,
					DotWidth:    3,
				},
			},
			chart.TimeSeries{
				Name:    "Min Temp",
				XValues: dates,
				YValues: minTemps,
				Style: chart.Style{
					StrokeWidth: 2,
					DotWidth:    3,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	return nil
}
