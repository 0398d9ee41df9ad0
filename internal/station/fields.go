package station

// Field names one numeric key of a Record and projects it.
type Field struct {
	Key string
	ref func(*Record) **float64
}

// Value returns the field's value on r, nil when absent.
func (f Field) Value(r *Record) *float64 {
	if r == nil || f.ref == nil {
		return nil
	}
	return *f.ref(r)
}

var fieldsByKey = make(map[string]Field)

func field(key string, ref func(*Record) **float64) Field {
	f := Field{Key: key, ref: ref}
	fieldsByKey[key] = f
	return f
}

// FieldByKey looks up a numeric field by its wire key.
func FieldByKey(key string) (Field, bool) {
	f, ok := fieldsByKey[key]
	return f, ok
}

var (
	// ISS current.
	FieldTemp      = field("temp", func(r *Record) **float64 { return &r.Temp })
	FieldHum       = field("hum", func(r *Record) **float64 { return &r.Hum })
	FieldDewPoint  = field("dew_point", func(r *Record) **float64 { return &r.DewPoint })
	FieldHeatIndex = field("heat_index", func(r *Record) **float64 { return &r.HeatIndex })
	FieldWindChill = field("wind_chill", func(r *Record) **float64 { return &r.WindChill })
	FieldWetBulb   = field("wet_bulb", func(r *Record) **float64 { return &r.WetBulb })
	FieldTHWIndex  = field("thw_index", func(r *Record) **float64 { return &r.THWIndex })
	FieldTHSWIndex = field("thsw_index", func(r *Record) **float64 { return &r.THSWIndex })
	FieldWBGT      = field("wbgt", func(r *Record) **float64 { return &r.WBGT })
	FieldUVIndex   = field("uv_index", func(r *Record) **float64 { return &r.UVIndex })
	FieldSolarRad  = field("solar_rad", func(r *Record) **float64 { return &r.SolarRad })

	FieldWindSpeedLast         = field("wind_speed_last", func(r *Record) **float64 { return &r.WindSpeedLast })
	FieldWindSpeedAvgLast1Min  = field("wind_speed_avg_last_1_min", func(r *Record) **float64 { return &r.WindSpeedAvgLast1Min })
	FieldWindSpeedAvgLast2Min  = field("wind_speed_avg_last_2_min", func(r *Record) **float64 { return &r.WindSpeedAvgLast2Min })
	FieldWindSpeedAvgLast10Min = field("wind_speed_avg_last_10_min", func(r *Record) **float64 { return &r.WindSpeedAvgLast10Min })
	FieldWindSpeedHiLast2Min   = field("wind_speed_hi_last_2_min", func(r *Record) **float64 { return &r.WindSpeedHiLast2Min })
	FieldWindSpeedHiLast10Min  = field("wind_speed_hi_last_10_min", func(r *Record) **float64 { return &r.WindSpeedHiLast10Min })

	FieldWindDirLast               = field("wind_dir_last", func(r *Record) **float64 { return &r.WindDirLast })
	FieldWindDirScalarAvgLast1Min  = field("wind_dir_scalar_avg_last_1_min", func(r *Record) **float64 { return &r.WindDirScalarAvgLast1Min })
	FieldWindDirScalarAvgLast2Min  = field("wind_dir_scalar_avg_last_2_min", func(r *Record) **float64 { return &r.WindDirScalarAvgLast2Min })
	FieldWindDirScalarAvgLast10Min = field("wind_dir_scalar_avg_last_10_min", func(r *Record) **float64 { return &r.WindDirScalarAvgLast10Min })
	FieldWindDirAtHiSpeedLast2Min  = field("wind_dir_at_hi_speed_last_2_min", func(r *Record) **float64 { return &r.WindDirAtHiSpeedLast2Min })
	FieldWindDirAtHiSpeedLast10Min = field("wind_dir_at_hi_speed_last_10_min", func(r *Record) **float64 { return &r.WindDirAtHiSpeedLast10Min })

	FieldRainRateLastMM      = field("rain_rate_last_mm", func(r *Record) **float64 { return &r.RainRateLastMM })
	FieldRainRateLastIn      = field("rain_rate_last_in", func(r *Record) **float64 { return &r.RainRateLastIn })
	FieldRainRateHiMM        = field("rain_rate_hi_mm", func(r *Record) **float64 { return &r.RainRateHiMM })
	FieldRainRateHiIn        = field("rain_rate_hi_in", func(r *Record) **float64 { return &r.RainRateHiIn })
	FieldRainfallLast15MinMM = field("rainfall_last_15_min_mm", func(r *Record) **float64 { return &r.RainfallLast15MinMM })
	FieldRainfallLast15MinIn = field("rainfall_last_15_min_in", func(r *Record) **float64 { return &r.RainfallLast15MinIn })
	FieldRainfallLast60MinMM = field("rainfall_last_60_min_mm", func(r *Record) **float64 { return &r.RainfallLast60MinMM })
	FieldRainfallLast60MinIn = field("rainfall_last_60_min_in", func(r *Record) **float64 { return &r.RainfallLast60MinIn })
	FieldRainfallLast24HrMM  = field("rainfall_last_24_hr_mm", func(r *Record) **float64 { return &r.RainfallLast24HrMM })
	FieldRainfallLast24HrIn  = field("rainfall_last_24_hr_in", func(r *Record) **float64 { return &r.RainfallLast24HrIn })
	FieldRainfallDayMM       = field("rainfall_day_mm", func(r *Record) **float64 { return &r.RainfallDayMM })
	FieldRainfallDayIn       = field("rainfall_day_in", func(r *Record) **float64 { return &r.RainfallDayIn })
	FieldRainfallMonthMM     = field("rainfall_month_mm", func(r *Record) **float64 { return &r.RainfallMonthMM })
	FieldRainfallMonthIn     = field("rainfall_month_in", func(r *Record) **float64 { return &r.RainfallMonthIn })
	FieldRainfallYearMM      = field("rainfall_year_mm", func(r *Record) **float64 { return &r.RainfallYearMM })
	FieldRainfallYearIn      = field("rainfall_year_in", func(r *Record) **float64 { return &r.RainfallYearIn })
	FieldRainStormLastMM     = field("rain_storm_last_mm", func(r *Record) **float64 { return &r.RainStormLastMM })
	FieldRainStormLastIn     = field("rain_storm_last_in", func(r *Record) **float64 { return &r.RainStormLastIn })
	FieldRainStormCurrentMM  = field("rain_storm_current_mm", func(r *Record) **float64 { return &r.RainStormCurrentMM })
	FieldRainStormCurrentIn  = field("rain_storm_current_in", func(r *Record) **float64 { return &r.RainStormCurrentIn })

	FieldRSSILast         = field("rssi_last", func(r *Record) **float64 { return &r.RSSILast })
	FieldReceptionDay     = field("reception_day", func(r *Record) **float64 { return &r.ReceptionDay })
	FieldTransBatteryFlag = field("trans_battery_flag", func(r *Record) **float64 { return &r.TransBatteryFlag })

	// ISS archive intervals.
	FieldTempLast       = field("temp_last", func(r *Record) **float64 { return &r.TempLast })
	FieldTempAvg        = field("temp_avg", func(r *Record) **float64 { return &r.TempAvg })
	FieldTempHi         = field("temp_hi", func(r *Record) **float64 { return &r.TempHi })
	FieldTempLo         = field("temp_lo", func(r *Record) **float64 { return &r.TempLo })
	FieldHumLast        = field("hum_last", func(r *Record) **float64 { return &r.HumLast })
	FieldDewPointLast   = field("dew_point_last", func(r *Record) **float64 { return &r.DewPointLast })
	FieldHeatIndexLast  = field("heat_index_last", func(r *Record) **float64 { return &r.HeatIndexLast })
	FieldWindChillLast  = field("wind_chill_last", func(r *Record) **float64 { return &r.WindChillLast })
	FieldWindSpeedAvg   = field("wind_speed_avg", func(r *Record) **float64 { return &r.WindSpeedAvg })
	FieldWindSpeedHi    = field("wind_speed_hi", func(r *Record) **float64 { return &r.WindSpeedHi })
	FieldWindDirPrevail = field("wind_dir_of_prevail", func(r *Record) **float64 { return &r.WindDirPrevail })
	FieldWindDirOfHi    = field("wind_dir_of_hi", func(r *Record) **float64 { return &r.WindDirOfHi })
	FieldRainfallMM     = field("rainfall_mm", func(r *Record) **float64 { return &r.RainfallMM })
	FieldRainfallIn     = field("rainfall_in", func(r *Record) **float64 { return &r.RainfallIn })

	// Barometer.
	FieldBarSeaLevel = field("bar_sea_level", func(r *Record) **float64 { return &r.BarSeaLevel })
	FieldBarAbsolute = field("bar_absolute", func(r *Record) **float64 { return &r.BarAbsolute })
	FieldBarTrend    = field("bar_trend", func(r *Record) **float64 { return &r.BarTrend })
	FieldBarOffset   = field("bar_offset", func(r *Record) **float64 { return &r.BarOffset })

	// Indoor.
	FieldTempIn      = field("temp_in", func(r *Record) **float64 { return &r.TempIn })
	FieldHumIn       = field("hum_in", func(r *Record) **float64 { return &r.HumIn })
	FieldDewPointIn  = field("dew_point_in", func(r *Record) **float64 { return &r.DewPointIn })
	FieldHeatIndexIn = field("heat_index_in", func(r *Record) **float64 { return &r.HeatIndexIn })
	FieldWetBulbIn   = field("wet_bulb_in", func(r *Record) **float64 { return &r.WetBulbIn })

	// Console health.
	FieldBatteryVoltage = field("battery_voltage", func(r *Record) **float64 { return &r.BatteryVoltage })
	FieldBatteryPercent = field("battery_percent", func(r *Record) **float64 { return &r.BatteryPercent })
	FieldWifiRSSI       = field("wifi_rssi", func(r *Record) **float64 { return &r.WifiRSSI })
	FieldOSUptime       = field("os_uptime", func(r *Record) **float64 { return &r.OSUptime })
	FieldAppUptime      = field("app_uptime", func(r *Record) **float64 { return &r.AppUptime })
	FieldFreeMem        = field("free_mem", func(r *Record) **float64 { return &r.FreeMem })
)

var stringFields = map[string]func(*Record) **string{
	"console_sw_version":    func(r *Record) **string { return &r.ConsoleSWVersion },
	"console_os_version":    func(r *Record) **string { return &r.ConsoleOSVersion },
	"console_radio_version": func(r *Record) **string { return &r.ConsoleRadioVersion },
}
