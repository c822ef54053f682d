package weather

import (
	"strings"
	"testing"
)

func TestRecommendBaseLayerPerLabel(t *testing.T) {
	tests := []struct {
		label TempLabel
		want  string
	}{
		{TempVeryCold, "a heavy winter coat, thermal layers, gloves, and a warm hat"},
		{TempCold, "a warm jacket, sweater, and long pants"},
		{TempCool, "a light jacket or hoodie with long pants"},
		{TempMild, "a long-sleeve shirt or light sweater with jeans or chinos"},
		{TempWarm, "a t-shirt or light top with breathable pants or shorts"},
		{TempHot, "a very light t-shirt and shorts or other breathable clothing"},
		{TempUnknown, "comfortable layered clothing, as temperature is unclear"},
	}

	for _, tc := range tests {
		got := Recommend(ConditionAnalysis{TempLabel: tc.label}, ContextOutdoor)
		if !strings.HasPrefix(got, tc.want) {
			t.Errorf("Recommend(%s) = %q, want prefix %q", tc.label, got, tc.want)
		}
	}
}

func TestRecommendClauseOrder(t *testing.T) {
	analysis := ConditionAnalysis{
		TempLabel: TempWarm,
		IsRainy:   true,
		IsSnowy:   true,
		IsWindy:   true,
		IsHumid:   true,
	}

	got := Recommend(analysis, ContextOutdoor)

	// Every clause must appear, in the fixed rain -> snow -> wind ->
	// humidity -> context order after the base layer.
	clauses := []string{
		"a t-shirt or light top with breathable pants or shorts",
		"carry a waterproof jacket or umbrella",
		"wear waterproof boots and an insulated jacket",
		"add a windbreaker or an extra layer to block the wind",
		"choose moisture-wicking fabrics to stay comfortable in the humidity",
		"since you will be outdoors, plan for slightly harsher conditions than the current reading.",
	}

	prev := -1
	for _, clause := range clauses {
		idx := strings.Index(got, clause)
		if idx < 0 {
			t.Fatalf("missing clause %q in %q", clause, got)
		}
		if idx <= prev {
			t.Errorf("clause %q out of order in %q", clause, got)
		}
		prev = idx
	}
}

func TestRecommendHumidityOnlyWhenWarmOrHot(t *testing.T) {
	humidClause := "choose moisture-wicking fabrics"

	for _, label := range []TempLabel{TempVeryCold, TempCold, TempCool, TempMild, TempUnknown} {
		got := Recommend(ConditionAnalysis{TempLabel: label, IsHumid: true}, ContextOutdoor)
		if strings.Contains(got, humidClause) {
			t.Errorf("humidity clause should not appear for %s", label)
		}
	}

	for _, label := range []TempLabel{TempWarm, TempHot} {
		got := Recommend(ConditionAnalysis{TempLabel: label, IsHumid: true}, ContextOutdoor)
		if !strings.Contains(got, humidClause) {
			t.Errorf("humidity clause should appear for %s", label)
		}
	}
}

func TestRecommendContextClause(t *testing.T) {
	base := ConditionAnalysis{TempLabel: TempMild}

	indoor := Recommend(base, ContextIndoor)
	if !strings.Contains(indoor, "since you will be indoors") {
		t.Errorf("indoor recommendation missing indoor clause: %q", indoor)
	}

	outdoor := Recommend(base, ContextOutdoor)
	if !strings.Contains(outdoor, "since you will be outdoors") {
		t.Errorf("outdoor recommendation missing outdoor clause: %q", outdoor)
	}

	other := Recommend(base, Context("commuting"))
	if !strings.Contains(other, "adjust for your personal comfort and activity level.") {
		t.Errorf("unrecognized context should get the generic clause: %q", other)
	}
}

// Cold, rainy, windy, humid, outdoors: rain and wind clauses appear, the
// humidity clause does not (cold is not warm/hot).
func TestRecommendColdRainyWindyOutdoor(t *testing.T) {
	obs := RawObservation{
		Temperature:   floatPtr(3),
		Humidity:      floatPtr(80),
		WindSpeed:     floatPtr(25),
		Precipitation: floatPtr(0),
		WeatherCode:   intPtr(61),
	}
	analysis := Classify(obs, UnitsMetric)

	got := Recommend(analysis, ContextOutdoor)

	if !strings.HasPrefix(got, "a warm jacket, sweater, and long pants") {
		t.Errorf("recommendation should start with the cold base clause: %q", got)
	}
	for _, clause := range []string{
		"carry a waterproof jacket or umbrella",
		"add a windbreaker or an extra layer to block the wind",
		"since you will be outdoors",
	} {
		if !strings.Contains(got, clause) {
			t.Errorf("missing clause %q in %q", clause, got)
		}
	}
	if strings.Contains(got, "moisture-wicking") {
		t.Errorf("humidity clause should be excluded when cold: %q", got)
	}
	if strings.Contains(got, "waterproof boots") {
		t.Errorf("snow clause should be excluded: %q", got)
	}
}

func TestRecommendAllAbsentFallsBackToUnclear(t *testing.T) {
	analysis := Classify(RawObservation{}, UnitsImperial)

	got := Recommend(analysis, ContextOutdoor)
	want := "comfortable layered clothing, as temperature is unclear " +
		"since you will be outdoors, plan for slightly harsher conditions than the current reading."
	if got != want {
		t.Errorf("Recommend = %q, want %q", got, want)
	}
}
