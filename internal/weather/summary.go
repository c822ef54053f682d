package weather

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatSummary renders a location and its analysis into a fixed
// multi-line display string. Absent numeric fields render as "N/A";
// the formatter never fails.
func FormatSummary(loc Location, analysis ConditionAnalysis) string {
	tempSym := analysis.Units.TempSymbol()

	lines := []string{
		fmt.Sprintf("Weather summary for %s, %s:", loc.Name, loc.Country),
		summaryLine("Condition", fmt.Sprintf("%s (%s)", analysis.Description, analysis.TempLabel)),
		summaryLine("Temperature", tempValue(analysis.Temperature, tempSym)),
		summaryLine("Feels like", tempValue(analysis.FeelsLike, tempSym)),
		summaryLine("Humidity", humidityValue(analysis.Humidity)),
		summaryLine("Wind speed", windValue(analysis.WindSpeed, analysis.Units.WindSymbol())),
	}
	return strings.Join(lines, "\n")
}

func summaryLine(label, value string) string {
	return fmt.Sprintf("  %-14s: %s", label, value)
}

func tempValue(v *float64, symbol string) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%s", *v, symbol)
}

func humidityValue(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64) + "%"
}

func windValue(v *float64, symbol string) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64) + " " + symbol
}
