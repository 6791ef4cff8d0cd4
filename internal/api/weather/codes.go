package weather

// WMO weather interpretation codes as used by the Open-Meteo forecast API.
var conditionByCode = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	71: "Slight snow",
	73: "Moderate snow",
	75: "Heavy snow",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// ConditionFromCode maps a WMO weather code to a human-readable condition.
func ConditionFromCode(code int) string {
	if condition, ok := conditionByCode[code]; ok {
		return condition
	}
	return "Unknown"
}
