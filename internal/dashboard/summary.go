package dashboard

import (
	"time"

	"github.com/i474232898/station-dashboard/internal/station"
	"github.com/i474232898/station-dashboard/internal/units"
)

// Summary condenses a historic window of ISS archive records.
type Summary struct {
	Records           int      `json:"records"`
	MeanTemperature   string   `json:"meanTemperature"`
	MaxTemperature    string   `json:"maxTemperature"`
	MinTemperature    string   `json:"minTemperature"`
	MeanWind          string   `json:"meanWind"`
	MaxGust           string   `json:"maxGust"`
	Beaufort          string   `json:"beaufort"`
	PrevailingDir     string   `json:"prevailingDirection"`
	PrevailingDegrees *float64 `json:"prevailingDegrees"`
	TotalRainfall     string   `json:"totalRainfall"`
	MeanHumidity      string   `json:"meanHumidity"`
	MeanPressure      string   `json:"meanPressure"`
	WindowStart       string   `json:"windowStart"`
	WindowEnd         string   `json:"windowEnd"`
}

// HistoricSummary summarises historic with the default Renderer in English.
func HistoricSummary(historic *station.Snapshot, sys units.System) Summary {
	return Renderer{}.Summary(historic, sys, units.English)
}

// firstOf returns the first non-nil statistic.
func firstOf(records []station.Record, stat func([]station.Record, station.Field) *float64, fields ...station.Field) *float64 {
	for _, f := range fields {
		if v := stat(records, f); v != nil {
			return v
		}
	}
	return nil
}

func (r Renderer) Summary(historic *station.Snapshot, sys units.System, lang units.Language) Summary {
	iss := station.AllRecords(historic, station.SensorISS)
	bar := station.AllRecords(historic, station.SensorBarometer)

	prevailing := station.LatestNonNull(iss, station.FieldWindDirPrevail)
	maxGust := station.Max(iss, station.FieldWindSpeedHi)
	meanWind := station.Mean(iss, station.FieldWindSpeedAvg)

	s := Summary{
		Records:           len(iss),
		MeanTemperature:   units.FormatTemperature(firstOf(iss, station.Mean, station.FieldTempAvg, station.FieldTempLast), sys),
		MaxTemperature:    units.FormatTemperature(firstOf(iss, station.Max, station.FieldTempHi, station.FieldTempLast), sys),
		MinTemperature:    units.FormatTemperature(firstOf(iss, station.Min, station.FieldTempLo, station.FieldTempLast), sys),
		MeanWind:          units.FormatWindSpeed(meanWind, sys),
		MaxGust:           units.FormatWindSpeed(maxGust, sys),
		Beaufort:          units.Beaufort(meanWind).Describe(lang),
		PrevailingDir:     units.FormatWindDirection(prevailing, lang),
		PrevailingDegrees: prevailing,
		TotalRainfall: units.FormatRainfall(
			station.Sum(iss, station.FieldRainfallMM),
			station.Sum(iss, station.FieldRainfallIn),
			sys,
		),
		MeanHumidity: units.FormatHumidity(firstOf(iss, station.Mean, station.FieldHumLast)),
		MeanPressure: units.FormatPressure(station.Mean(bar, station.FieldBarSeaLevel), sys),
		WindowStart:  units.Placeholder,
		WindowEnd:    units.Placeholder,
	}

	if start, end, ok := span(iss); ok {
		s.WindowStart = units.FormatDateTime(start, r.location())
		s.WindowEnd = units.FormatDateTime(end, r.location())
	}
	return s
}

// span returns the first and last record timestamps.
func span(records []station.Record) (time.Time, time.Time, bool) {
	var start, end time.Time
	for i := range records {
		t, ok := records[i].Time()
		if !ok {
			continue
		}
		if start.IsZero() {
			start = t
		}
		end = t
	}
	return start, end, !start.IsZero()
}
