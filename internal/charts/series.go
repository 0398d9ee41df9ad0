package charts

import (
	"errors"

	"github.com/i474232898/station-dashboard/internal/station"
	"github.com/i474232898/station-dashboard/internal/units"
)

// ErrUnknownKind is returned by Build for a chart kind it does not know.
var ErrUnknownKind = errors.New("unknown chart kind")

// Point is one sample on a chart. X is epoch milliseconds; a nil Y is a gap.
type Point struct {
	X int64    `json:"x"`
	Y *float64 `json:"y"`
}

// Series is one named, coloured line.
type Series struct {
	Name  string  `json:"name"`
	Color string  `json:"color"`
	Data  []Point `json:"data"`
}

// Kind identifies one of the history charts.
type Kind string

const (
	KindTemperature Kind = "temperature"
	KindWind        Kind = "wind"
	KindPressure    Kind = "pressure"
	KindHumidity    Kind = "humidity"
	KindRainfall    Kind = "rainfall"
)

// Kinds lists every chart the builder can produce.
var Kinds = []Kind{KindTemperature, KindWind, KindPressure, KindHumidity, KindRainfall}

// line describes one series: how to read its value from a record.
type line struct {
	name  seriesName
	color string
	value func(r *station.Record) *float64
}

// build walks records once and fills one series per line. Records without a
// timestamp are skipped for every line together, so index i always refers to
// the same record across sibling series.
func build(records []station.Record, lang units.Language, lines ...line) []Series {
	out := make([]Series, len(lines))
	for i, l := range lines {
		out[i] = Series{
			Name:  l.name.in(lang),
			Color: l.color,
			Data:  make([]Point, 0, len(records)),
		}
	}

	for i := range records {
		r := &records[i]
		if r.TS == nil {
			continue
		}
		x := *r.TS * 1000
		for j, l := range lines {
			out[j].Data = append(out[j].Data, Point{X: x, Y: l.value(r)})
		}
	}
	return out
}

func rounded(v *float64, decimals int) *float64 {
	if v == nil {
		return nil
	}
	r := units.Round(*v, decimals)
	return &r
}

func temperature(f station.Field, sys units.System) func(*station.Record) *float64 {
	return func(r *station.Record) *float64 {
		return rounded(units.Temperature(f.Value(r), sys), units.DefaultDecimals)
	}
}

func windSpeed(f station.Field, sys units.System) func(*station.Record) *float64 {
	return func(r *station.Record) *float64 {
		return rounded(units.WindSpeed(f.Value(r), sys), units.DefaultDecimals)
	}
}

// Temperature charts outdoor temperature, dew point, heat index and wind
// chill from ISS archive records.
func Temperature(records []station.Record, sys units.System, lang units.Language) []Series {
	return build(records, lang,
		line{nameTemperature, ColorTemperature, temperature(station.FieldTempLast, sys)},
		line{nameDewPoint, ColorDewPoint, temperature(station.FieldDewPointLast, sys)},
		line{nameHeatIndex, ColorHeatIndex, temperature(station.FieldHeatIndexLast, sys)},
		line{nameWindChill, ColorWindChill, temperature(station.FieldWindChillLast, sys)},
	)
}

// Wind charts average wind speed and the highest gust per interval.
func Wind(records []station.Record, sys units.System, lang units.Language) []Series {
	return build(records, lang,
		line{nameWindAverage, ColorWindSpeed, windSpeed(station.FieldWindSpeedAvg, sys)},
		line{nameWindGust, ColorWindGust, windSpeed(station.FieldWindSpeedHi, sys)},
	)
}

// Pressure charts sea-level pressure from barometer archive records.
func Pressure(records []station.Record, sys units.System, lang units.Language) []Series {
	return build(records, lang, line{nameBarometer, ColorPressure, func(r *station.Record) *float64 {
		return rounded(units.Pressure(station.FieldBarSeaLevel.Value(r), sys), units.DefaultDecimals)
	}})
}

// Humidity charts outdoor relative humidity.
func Humidity(records []station.Record, lang units.Language) []Series {
	return build(records, lang, line{nameHumidity, ColorHumidity, func(r *station.Record) *float64 {
		return rounded(station.FieldHumLast.Value(r), units.DefaultDecimals)
	}})
}

// Rainfall charts per-interval rainfall. Unlike every other chart a missing
// amount is drawn as 0: an interval without a rainfall value recorded no rain.
func Rainfall(records []station.Record, sys units.System, lang units.Language) []Series {
	return build(records, lang, line{nameRainfall, ColorRainfall, func(r *station.Record) *float64 {
		v := rounded(units.RainfallExact(r.RainfallMM, r.RainfallIn, sys), units.RainfallDecimals)
		if v == nil {
			zero := 0.0
			return &zero
		}
		return v
	}})
}

// Build produces the series of kind from a historic snapshot.
func Build(kind Kind, historic *station.Snapshot, sys units.System, lang units.Language) ([]Series, error) {
	iss := station.AllRecords(historic, station.SensorISS)
	switch kind {
	case KindTemperature:
		return Temperature(iss, sys, lang), nil
	case KindWind:
		return Wind(iss, sys, lang), nil
	case KindPressure:
		return Pressure(station.AllRecords(historic, station.SensorBarometer), sys, lang), nil
	case KindHumidity:
		return Humidity(iss, lang), nil
	case KindRainfall:
		return Rainfall(iss, sys, lang), nil
	default:
		return nil, ErrUnknownKind
	}
}
