package weather

// Describe maps an Open-Meteo WMO weather code to a short text description
// and a normalized Condition tag. It never fails: a nil code yields
// "unknown weather" and any code outside the known groups yields
// "mixed or unknown conditions", both tagged ConditionUnknown.
func Describe(code *int) (string, Condition) {
	if code == nil {
		return "unknown weather", ConditionUnknown
	}

	// Based on WMO weather code groups (simplified).
	switch *code {
	case 0:
		return "clear sky", ConditionClear
	case 1, 2, 3:
		return "partly cloudy or overcast", ConditionCloudy
	case 45, 48:
		return "foggy or misty", ConditionFog
	case 51, 53, 55, 56, 57:
		return "drizzle or light rain", ConditionDrizzle
	case 61, 63, 65, 66, 67, 80, 81, 82:
		return "rainy", ConditionRain
	case 71, 73, 75, 77, 85, 86:
		return "snowy", ConditionSnow
	case 95, 96, 99:
		return "thunderstorms", ConditionStorm
	default:
		return "mixed or unknown conditions", ConditionUnknown
	}
}
