package weather

import "time"

// Condition is a normalized high-level weather category derived from the
// provider's WMO weather code. The classifier keys off this tag rather
// than matching substrings in the human-readable description.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionClear   Condition = "clear"
	ConditionCloudy  Condition = "cloudy"
	ConditionFog     Condition = "fog"
	ConditionDrizzle Condition = "drizzle"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionStorm   Condition = "storm"
)

// TempLabel is a qualitative temperature band.
type TempLabel string

const (
	TempVeryCold TempLabel = "very cold"
	TempCold     TempLabel = "cold"
	TempCool     TempLabel = "cool"
	TempMild     TempLabel = "mild"
	TempWarm     TempLabel = "warm"
	TempHot      TempLabel = "hot"
	TempUnknown  TempLabel = "unknown"
)

// UnitSystem selects the unit convention for displayed values and
// thresholds. The gateway is asked to return values already in the chosen
// units, so nothing in the core ever converts.
type UnitSystem string

const (
	UnitsMetric   UnitSystem = "metric"
	UnitsImperial UnitSystem = "imperial"
)

// ParseUnitSystem normalizes user input; anything unrecognized is metric.
func ParseUnitSystem(s string) UnitSystem {
	if UnitSystem(s) == UnitsImperial {
		return UnitsImperial
	}
	return UnitsMetric
}

// TemperatureUnit returns the Open-Meteo temperature_unit parameter value.
func (u UnitSystem) TemperatureUnit() string {
	if u == UnitsImperial {
		return "fahrenheit"
	}
	return "celsius"
}

// WindSpeedUnit returns the Open-Meteo windspeed_unit parameter value.
func (u UnitSystem) WindSpeedUnit() string {
	if u == UnitsImperial {
		return "mph"
	}
	return "kmh"
}

// TempSymbol returns the display symbol for temperatures.
func (u UnitSystem) TempSymbol() string {
	if u == UnitsImperial {
		return "°F"
	}
	return "°C"
}

// WindSymbol returns the display symbol for wind speeds.
func (u UnitSystem) WindSymbol() string {
	if u == UnitsImperial {
		return "mph"
	}
	return "km/h"
}

// Context is the user's stated environment for the recommendation.
type Context string

const (
	ContextIndoor  Context = "indoor"
	ContextOutdoor Context = "outdoor"
)

// ParseContext normalizes user input; anything unrecognized is outdoor.
func ParseContext(s string) Context {
	if Context(s) == ContextIndoor {
		return ContextIndoor
	}
	return ContextOutdoor
}

// Location is the result of a geocoding lookup. Immutable once produced.
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone"`
}

// RawObservation is a single current-weather reading. Every field is
// optional: the provider may omit any of them, and absence is a typed
// condition (nil), not a runtime lookup failure. The JSON tags match the
// Open-Meteo "current" block so the gateway decodes straight into it.
type RawObservation struct {
	Temperature   *float64 `json:"temperature_2m"`
	FeelsLike     *float64 `json:"apparent_temperature"`
	Humidity      *float64 `json:"relative_humidity_2m"`
	WindSpeed     *float64 `json:"wind_speed_10m"`
	Precipitation *float64 `json:"precipitation"`
	WeatherCode   *int     `json:"weather_code"`
}

// ConditionAnalysis is the classifier's output: the original observation
// carried through unchanged, plus derived labels and flags. Never mutated
// after Classify returns it.
type ConditionAnalysis struct {
	RawObservation

	Units       UnitSystem `json:"units"`
	Description string     `json:"description"`
	Condition   Condition  `json:"condition"`
	TempLabel   TempLabel  `json:"tempLabel"`
	IsWindy     bool       `json:"isWindy"`
	IsHumid     bool       `json:"isHumid"`
	IsRainy     bool       `json:"isRainy"`
	IsSnowy     bool       `json:"isSnowy"`
}

// ForecastDay is one day of the daily forecast used for chart rendering.
type ForecastDay struct {
	Date    time.Time `json:"date"`
	MaxTemp float64   `json:"maxTemp"`
	MinTemp float64   `json:"minTemp"`
}
