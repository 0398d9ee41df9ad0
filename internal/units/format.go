package units

import (
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// DateTimeLayout is the absolute timestamp layout shown on the dashboard.
const DateTimeLayout = "02/01/2006 15:04"

// Fixed renders v rounded to decimals, without a unit.
func Fixed(v float64, decimals int) string {
	return strconv.FormatFloat(Round(v, decimals), 'f', decimals, 64)
}

func format(v *float64, decimals int, suffix string) string {
	if v == nil || math.IsNaN(*v) {
		return Placeholder
	}
	return Fixed(*v, decimals) + suffix
}

// FormatTemperature renders a Fahrenheit reading, e.g. "19.6°C".
func FormatTemperature(f *float64, sys System) string {
	return format(Temperature(f, sys), DefaultDecimals, LabelsFor(sys).Temperature)
}

// FormatWindSpeed renders an mph reading, e.g. "11.3 km/h".
func FormatWindSpeed(mph *float64, sys System) string {
	return format(WindSpeed(mph, sys), DefaultDecimals, " "+LabelsFor(sys).WindSpeed)
}

// FormatPressure renders an inHg reading, e.g. "1011.4 mb".
func FormatPressure(inHg *float64, sys System) string {
	return format(Pressure(inHg, sys), DefaultDecimals, " "+LabelsFor(sys).Pressure)
}

// FormatHumidity renders a relative humidity, e.g. "78.7%".
func FormatHumidity(pct *float64) string {
	return format(pct, DefaultDecimals, "%")
}

// FormatRainfall renders a rainfall amount from the station's mm/in pair.
func FormatRainfall(mm, in *float64, sys System) string {
	return format(Rainfall(mm, in, sys), RainfallDecimals, " "+LabelsFor(sys).Rainfall)
}

// FormatRainRate renders a rain rate from the station's mm/h and in/h pair.
func FormatRainRate(mm, in *float64, sys System) string {
	return format(Rainfall(mm, in, sys), RainfallDecimals, " "+LabelsFor(sys).RainfallRate)
}

// FormatPercentage renders a whole percentage such as a battery level.
func FormatPercentage(v *float64) string {
	return format(v, 0, "%")
}

// CompassIndex maps degrees to one of eight compass buckets.
func CompassIndex(degrees float64) int {
	i := int(math.Round(degrees/45)) % 8
	if i < 0 {
		i += 8
	}
	return i
}

// FormatWindDirection renders degrees as an 8-point compass label.
func FormatWindDirection(degrees *float64, lang Language) string {
	if degrees == nil || math.IsNaN(*degrees) {
		return Placeholder
	}
	if lang == Dutch {
		return compassNL[CompassIndex(*degrees)]
	}
	return compassEN[CompassIndex(*degrees)]
}

// Beaufort classifies an mph wind speed. Absent input yields a tier with a
// nil Value and placeholder descriptions.
func Beaufort(mph *float64) BeaufortTier {
	if mph == nil || math.IsNaN(*mph) {
		return BeaufortTier{Description: Placeholder, DescriptionEN: Placeholder}
	}
	for _, t := range beaufortScale {
		if *mph < t.Max {
			return t.clone()
		}
	}
	return beaufortScale[len(beaufortScale)-1].clone()
}

// FormatDateTime renders t in local dashboard layout, "--" for the zero time.
func FormatDateTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return Placeholder
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(DateTimeLayout)
}

// FormatRelativeTime renders t relative to now, e.g. "3 minutes ago".
func FormatRelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
