package units

import "math"

// Conversion factors between the station's canonical units and their
// metric or imperial counterparts.
const (
	MphToKmhFactor = 1.609344
	KmhToMphFactor = 0.621371
	InToMmFactor   = 25.4
	MmToInFactor   = 0.0393701
	InHgToMbFactor = 33.8639
	MbToInHgFactor = 0.02953
	Placeholder    = "--"
)

// Display precision per quantity class.
const (
	DefaultDecimals  = 1
	RainfallDecimals = 2
)

// System selects the unit system values are presented in.
type System int

const (
	Metric System = iota
	Imperial
)

// SystemFor maps the persisted "use metric" flag to a System.
func SystemFor(useMetric bool) System {
	if useMetric {
		return Metric
	}
	return Imperial
}

func (s System) String() string {
	if s == Imperial {
		return "imperial"
	}
	return "metric"
}

// Labels are the unit suffixes shown next to values.
type Labels struct {
	Temperature  string `json:"temperature"`
	WindSpeed    string `json:"windSpeed"`
	Pressure     string `json:"pressure"`
	Rainfall     string `json:"rainfall"`
	RainfallRate string `json:"rainfallRate"`
	Humidity     string `json:"humidity"`
}

var (
	metricLabels = Labels{
		Temperature:  "°C",
		WindSpeed:    "km/h",
		Pressure:     "mb",
		Rainfall:     "mm",
		RainfallRate: "mm/h",
		Humidity:     "%",
	}
	imperialLabels = Labels{
		Temperature:  "°F",
		WindSpeed:    "mph",
		Pressure:     "inHg",
		Rainfall:     "in",
		RainfallRate: "in/h",
		Humidity:     "%",
	}
)

// LabelsFor returns the unit suffixes of a system.
func LabelsFor(s System) Labels {
	if s == Imperial {
		return imperialLabels
	}
	return metricLabels
}

// Language selects the wording of compass points and scale descriptions.
type Language string

const (
	English Language = "en"
	Dutch   Language = "nl"
)

// ParseLanguage accepts "en" or "nl" and falls back to English.
func ParseLanguage(s string) Language {
	if Language(s) == Dutch {
		return Dutch
	}
	return English
}

var (
	compassEN = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	compassNL = [8]string{"Noord", "Noordoost", "Oost", "Zuidoost", "Zuid", "Zuidwest", "West", "Noordwest"}
)

// BeaufortTier is one step of the Beaufort scale. A tier covers wind speeds
// in [previous tier's Max, Max) mph.
type BeaufortTier struct {
	Max           float64 `json:"-"`
	Value         *int    `json:"value"`
	Description   string  `json:"description"`
	DescriptionEN string  `json:"descriptionEn"`
}

// Describe returns the tier description in lang.
func (b BeaufortTier) Describe(lang Language) string {
	if lang == Dutch {
		return b.Description
	}
	return b.DescriptionEN
}

func (b BeaufortTier) clone() BeaufortTier {
	if b.Value != nil {
		v := *b.Value
		b.Value = &v
	}
	return b
}

func tier(max float64, value int, nl, en string) BeaufortTier {
	return BeaufortTier{Max: max, Value: &value, Description: nl, DescriptionEN: en}
}

var beaufortScale = []BeaufortTier{
	tier(1, 0, "stil", "calm"),
	tier(4, 1, "licht", "light air"),
	tier(8, 2, "licht", "light breeze"),
	tier(13, 3, "matig", "gentle breeze"),
	tier(19, 4, "matig", "moderate breeze"),
	tier(25, 5, "vrij krachtig", "fresh breeze"),
	tier(32, 6, "krachtig", "strong breeze"),
	tier(39, 7, "hard", "near gale"),
	tier(47, 8, "stormachtig", "gale"),
	tier(55, 9, "storm", "strong gale"),
	tier(64, 10, "zware storm", "storm"),
	tier(73, 11, "zeer zware storm", "violent storm"),
	tier(math.Inf(1), 12, "orkaan", "hurricane"),
}

// BeaufortScale returns a copy of the scale, calm first.
func BeaufortScale() []BeaufortTier {
	out := make([]BeaufortTier, len(beaufortScale))
	for i, t := range beaufortScale {
		out[i] = t.clone()
	}
	return out
}

// Thresholds for the console's health and trend classifications.
const (
	SignalExcellent = -50 // dBm
	SignalGood      = -60
	SignalFair      = -70
	SignalPoor      = -80

	ReceptionExcellent = 95 // percent
	ReceptionGood      = 85
	ReceptionFair      = 70
	ReceptionPoor      = 50

	RisingRapidlyAbove = 0.06 // inHg per 3 hours
	RisingAbove        = 0.02
	SteadyFrom         = -0.02
	FallingFrom        = -0.06

	BatteryFlagGood = 0
	BatteryFlagLow  = 1
)

// ChartTimeRanges are the windows, in hours, offered for history charts.
var ChartTimeRanges = []int{6, 12, 24}
