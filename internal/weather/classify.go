package weather

// Thresholds carries the cutoffs the classifier compares against. Each
// unit system has its own wind cutoff expressed in its native unit; the
// humidity cutoff is a percentage and unit-independent.
type Thresholds struct {
	WindyKmh float64
	WindyMph float64
	HumidPct float64
}

// DefaultThresholds are the stock cutoffs: 20 km/h or 12 mph for wind,
// 70% for humidity.
var DefaultThresholds = Thresholds{
	WindyKmh: 20,
	WindyMph: 12,
	HumidPct: 70,
}

// Classify derives a ConditionAnalysis from a raw observation using the
// default thresholds.
func Classify(obs RawObservation, units UnitSystem) ConditionAnalysis {
	return DefaultThresholds.Classify(obs, units)
}

// Classify is total: every observation, including one with all fields
// absent, produces a valid analysis. Absent fields degrade the derived
// labels to unknown/false rather than failing.
func (t Thresholds) Classify(obs RawObservation, units UnitSystem) ConditionAnalysis {
	description, condition := Describe(obs.WeatherCode)

	windyThreshold := t.WindyKmh
	if units == UnitsImperial {
		windyThreshold = t.WindyMph
	}

	return ConditionAnalysis{
		RawObservation: obs,
		Units:          units,
		Description:    description,
		Condition:      condition,
		TempLabel:      tempLabel(obs.Temperature),
		IsWindy:        obs.WindSpeed != nil && *obs.WindSpeed >= windyThreshold,
		IsHumid:        obs.Humidity != nil && *obs.Humidity >= t.HumidPct,
		IsRainy: (obs.Precipitation != nil && *obs.Precipitation > 0) ||
			condition == ConditionDrizzle || condition == ConditionRain,
		IsSnowy: condition == ConditionSnow,
	}
}

// tempLabel buckets a temperature into half-open bands, inclusive on the
// lower bound.
func tempLabel(temp *float64) TempLabel {
	if temp == nil {
		return TempUnknown
	}

	t := *temp
	switch {
	case t < -5:
		return TempVeryCold
	case t < 5:
		return TempCold
	case t < 15:
		return TempCool
	case t < 22:
		return TempMild
	case t < 28:
		return TempWarm
	default:
		return TempHot
	}
}
