package weather

import "strings"

// baseLayer holds the fixed base-layer advice per temperature band.
var baseLayer = map[TempLabel]string{
	TempVeryCold: "a heavy winter coat, thermal layers, gloves, and a warm hat",
	TempCold:     "a warm jacket, sweater, and long pants",
	TempCool:     "a light jacket or hoodie with long pants",
	TempMild:     "a long-sleeve shirt or light sweater with jeans or chinos",
	TempWarm:     "a t-shirt or light top with breathable pants or shorts",
	TempHot:      "a very light t-shirt and shorts or other breathable clothing",
}

const (
	rainAdvice  = "carry a waterproof jacket or umbrella"
	snowAdvice  = "wear waterproof boots and an insulated jacket"
	windAdvice  = "add a windbreaker or an extra layer to block the wind"
	humidAdvice = "choose moisture-wicking fabrics to stay comfortable in the humidity"

	unclearAdvice = "comfortable layered clothing, as temperature is unclear"

	indoorAdvice = "since you will be indoors, you can generally dress one level lighter " +
		"than you would for staying outside for a long time."
	outdoorAdvice = "since you will be outdoors, plan for slightly harsher conditions than the current reading."
	genericAdvice = "adjust for your personal comfort and activity level."
)

// Recommend turns an analysis plus the user's context into prose clothing
// advice. The clause order is fixed and part of the contract: base layer,
// then rain, snow, wind, humidity, and finally the context clause.
func Recommend(analysis ConditionAnalysis, env Context) string {
	recs := make([]string, 0, 6)

	if base, ok := baseLayer[analysis.TempLabel]; ok {
		recs = append(recs, base)
	} else {
		recs = append(recs, unclearAdvice)
	}

	if analysis.IsRainy {
		recs = append(recs, rainAdvice)
	}
	if analysis.IsSnowy {
		recs = append(recs, snowAdvice)
	}
	if analysis.IsWindy {
		recs = append(recs, windAdvice)
	}
	if analysis.IsHumid && (analysis.TempLabel == TempWarm || analysis.TempLabel == TempHot) {
		recs = append(recs, humidAdvice)
	}

	// Upstream already normalizes unrecognized input to outdoor; the
	// generic clause is defensive.
	switch env {
	case ContextIndoor:
		recs = append(recs, indoorAdvice)
	case ContextOutdoor:
		recs = append(recs, outdoorAdvice)
	default:
		recs = append(recs, genericAdvice)
	}

	return strings.Join(recs, " ")
}
