package charts

import "github.com/i474232898/station-dashboard/internal/units"

// Series colours.
const (
	ColorTemperature = "#FF6B6B"
	ColorDewPoint    = "#4ECDC4"
	ColorHeatIndex   = "#FF8C42"
	ColorWindChill   = "#95E1D3"
	ColorWindSpeed   = "#4A90E2"
	ColorWindGust    = "#D4A574"
	ColorPressure    = "#9B59B6"
	ColorHumidity    = "#3498DB"
	ColorRainfall    = "#1ABC9C"
)

type seriesName struct {
	en, nl string
}

func (n seriesName) in(lang units.Language) string {
	if lang == units.Dutch {
		return n.nl
	}
	return n.en
}

var (
	nameTemperature = seriesName{"Temperature", "Temperatuur"}
	nameDewPoint    = seriesName{"Dew point", "Dauwpunt"}
	nameHeatIndex   = seriesName{"Heat index", "Hitte Index"}
	nameWindChill   = seriesName{"Wind chill", "Gevoelstemperatuur"}
	nameWindAverage = seriesName{"Average", "Gemiddeld"}
	nameWindGust    = seriesName{"Gust", "Windstoot"}
	nameBarometer   = seriesName{"Pressure", "Luchtdruk"}
	nameHumidity    = seriesName{"Humidity", "Luchtvochtigheid"}
	nameRainfall    = seriesName{"Rainfall", "Regenval"}
)
