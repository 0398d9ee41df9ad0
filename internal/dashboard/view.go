// Package dashboard renders station snapshots into display-ready widgets.
package dashboard

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/i474232898/station-dashboard/internal/station"
	"github.com/i474232898/station-dashboard/internal/units"
)

type Temperature struct {
	Current   string `json:"current"`
	FeelsLike string `json:"feelsLike"`
	DewPoint  string `json:"dewPoint"`
	HeatIndex string `json:"heatIndex"`
	WindChill string `json:"windChill"`
	WetBulb   string `json:"wetBulb"`
	Humidity  string `json:"humidity"`
}

type Wind struct {
	Speed       string             `json:"speed"`
	Avg2Min     string             `json:"avg2Min"`
	Avg10Min    string             `json:"avg10Min"`
	Gust        string             `json:"gust"`
	Direction   string             `json:"direction"`
	Degrees     *float64           `json:"degrees"`
	Beaufort    units.BeaufortTier `json:"beaufort"`
	Description string             `json:"description"`
}

type Rain struct {
	Rate     string `json:"rate"`
	Last15   string `json:"last15Min"`
	Last60   string `json:"last60Min"`
	Last24h  string `json:"last24Hr"`
	Day      string `json:"day"`
	Month    string `json:"month"`
	Year     string `json:"year"`
	StormNow string `json:"stormCurrent"`
}

type Pressure struct {
	SeaLevel string      `json:"seaLevel"`
	Absolute string      `json:"absolute"`
	Trend    units.Trend `json:"trend"`
}

type Indoor struct {
	Temperature string `json:"temperature"`
	Humidity    string `json:"humidity"`
	DewPoint    string `json:"dewPoint"`
	HeatIndex   string `json:"heatIndex"`
}

type SystemHealth struct {
	Signal          string             `json:"signal"`
	SignalQuality   units.Quality      `json:"signalQuality"`
	Reception       string             `json:"reception"`
	ReceptionGrade  units.Quality      `json:"receptionQuality"`
	Transmitter     units.BatteryState `json:"transmitterBattery"`
	ConsoleBattery  string             `json:"consoleBattery"`
	ConsoleVoltage  string             `json:"consoleVoltage"`
	WifiSignal      string             `json:"wifiSignal"`
	WifiQuality     units.Quality      `json:"wifiQuality"`
	Uptime          string             `json:"uptime"`
	FreeMemory      string             `json:"freeMemory"`
	FirmwareVersion string             `json:"firmwareVersion"`
}

// Current is the rendered view of the latest snapshot.
type Current struct {
	Units               string       `json:"units"`
	Labels              units.Labels `json:"labels"`
	Temperature         Temperature  `json:"temperature"`
	Wind                Wind         `json:"wind"`
	Rain                Rain         `json:"rain"`
	Pressure            Pressure     `json:"pressure"`
	Indoor              Indoor       `json:"indoor"`
	System              SystemHealth `json:"system"`
	LastUpdated         string       `json:"lastUpdated"`
	LastUpdatedRelative string       `json:"lastUpdatedRelative"`
}

// Renderer carries the clock and zone used for timestamps. The zero value
// uses time.Now and the local zone.
type Renderer struct {
	Now      func() time.Time
	Location *time.Location
}

func (r Renderer) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r Renderer) location() *time.Location {
	if r.Location != nil {
		return r.Location
	}
	return time.Local
}

// CurrentView renders s with the default Renderer.
func CurrentView(s *station.Snapshot, sys units.System, lang units.Language) Current {
	return Renderer{}.Current(s, sys, lang)
}

func (r Renderer) Current(s *station.Snapshot, sys units.System, lang units.Language) Current {
	v := Current{
		Units:  sys.String(),
		Labels: units.LabelsFor(sys),
		Temperature: Temperature{
			Current:   units.FormatTemperature(station.Temperature(s), sys),
			FeelsLike: units.FormatTemperature(feelsLike(s), sys),
			DewPoint:  units.FormatTemperature(station.DewPoint(s), sys),
			HeatIndex: units.FormatTemperature(station.HeatIndex(s), sys),
			WindChill: units.FormatTemperature(station.WindChill(s), sys),
			WetBulb:   units.FormatTemperature(station.WetBulb(s), sys),
			Humidity:  units.FormatHumidity(station.Humidity(s)),
		},
		Wind: wind(s, sys, lang),
		Rain: Rain{
			Rate:     units.FormatRainRate(station.RainRateMM(s), station.RainRateIn(s), sys),
			Last15:   units.FormatRainfall(station.Rainfall15MinMM(s), station.Rainfall15MinIn(s), sys),
			Last60:   units.FormatRainfall(station.Rainfall60MinMM(s), station.Rainfall60MinIn(s), sys),
			Last24h:  units.FormatRainfall(station.Rainfall24HrMM(s), station.Rainfall24HrIn(s), sys),
			Day:      units.FormatRainfall(station.RainfallDayMM(s), station.RainfallDayIn(s), sys),
			Month:    units.FormatRainfall(station.RainfallMonthMM(s), station.RainfallMonthIn(s), sys),
			Year:     units.FormatRainfall(station.RainfallYearMM(s), station.RainfallYearIn(s), sys),
			StormNow: units.FormatRainfall(station.RainStormCurrentMM(s), station.RainStormCurrentIn(s), sys),
		},
		Pressure: Pressure{
			SeaLevel: units.FormatPressure(station.BarometerSeaLevel(s), sys),
			Absolute: units.FormatPressure(station.BarometerAbsolute(s), sys),
			Trend:    units.PressureTrend(station.BarometerTrend(s)),
		},
		Indoor: Indoor{
			Temperature: units.FormatTemperature(station.IndoorTemperature(s), sys),
			Humidity:    units.FormatHumidity(station.IndoorHumidity(s)),
			DewPoint:    units.FormatTemperature(station.IndoorDewPoint(s), sys),
			HeatIndex:   units.FormatTemperature(station.IndoorHeatIndex(s), sys),
		},
		System:              systemHealth(s),
		LastUpdated:         units.Placeholder,
		LastUpdatedRelative: units.Placeholder,
	}

	if t, ok := station.LastUpdated(s); ok {
		v.LastUpdated = units.FormatDateTime(t, r.location())
		v.LastUpdatedRelative = units.FormatRelativeTime(t, r.now())
	}
	return v
}

// feelsLike prefers THW, then heat index, then wind chill.
func feelsLike(s *station.Snapshot) *float64 {
	for _, fn := range []func(*station.Snapshot) *float64{station.THWIndex, station.HeatIndex, station.WindChill} {
		if v := fn(s); v != nil {
			return v
		}
	}
	return nil
}

func wind(s *station.Snapshot, sys units.System, lang units.Language) Wind {
	speed := station.WindSpeedLast(s)
	dir := station.WindDirLast(s)
	tier := units.Beaufort(speed)

	return Wind{
		Speed:       units.FormatWindSpeed(speed, sys),
		Avg2Min:     units.FormatWindSpeed(station.WindSpeedAvg2Min(s), sys),
		Avg10Min:    units.FormatWindSpeed(station.WindSpeedAvg10Min(s), sys),
		Gust:        units.FormatWindSpeed(station.WindSpeedHi10Min(s), sys),
		Direction:   units.FormatWindDirection(dir, lang),
		Degrees:     dir,
		Beaufort:    tier,
		Description: tier.Describe(lang),
	}
}

func systemHealth(s *station.Snapshot) SystemHealth {
	rssi := station.ISSSignal(s)
	reception := station.ReceptionDay(s)
	wifi := station.WifiSignal(s)

	h := SystemHealth{
		Signal:          dbm(rssi),
		SignalQuality:   units.SignalQuality(rssi),
		Reception:       units.FormatPercentage(reception),
		ReceptionGrade:  units.ReceptionQuality(reception),
		Transmitter:     units.BatteryStatus(station.TransmitterBatteryFlag(s)),
		ConsoleBattery:  units.FormatPercentage(station.BatteryPercent(s)),
		ConsoleVoltage:  units.Placeholder,
		WifiSignal:      dbm(wifi),
		WifiQuality:     units.SignalQuality(wifi),
		Uptime:          units.Placeholder,
		FreeMemory:      units.Placeholder,
		FirmwareVersion: units.Placeholder,
	}

	// battery_voltage is reported in millivolts.
	if mv := station.BatteryVoltage(s); mv != nil {
		h.ConsoleVoltage = units.Fixed(*mv/1000, 2) + " V"
	}
	if up := station.Uptime(s); up != nil && *up >= 0 {
		h.Uptime = (time.Duration(*up) * time.Second).String()
	}
	// free_mem is reported in kilobytes.
	if kb := station.FreeMemory(s); kb != nil && *kb >= 0 {
		h.FreeMemory = humanize.Bytes(uint64(*kb) * 1000)
	}
	if fw := station.FirmwareVersion(s); fw != nil {
		h.FirmwareVersion = *fw
	}
	return h
}

func dbm(v *float64) string {
	if v == nil {
		return units.Placeholder
	}
	return strconv.FormatFloat(*v, 'f', 0, 64) + " dBm"
}
