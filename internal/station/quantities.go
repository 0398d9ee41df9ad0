package station

// Every accessor below reads the latest record of the owning sensor and
// returns nil when the sensor, the record or the field is missing. A zero
// reading and a missing reading are never conflated. Values are in the
// station's canonical units; conversion belongs to the units package.

func latest(s *Snapshot, t SensorType, f Field) *float64 {
	r, ok := LatestRecord(s, t)
	if !ok {
		return nil
	}
	return clone(f.Value(r))
}

func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Outdoor climate, read from the ISS block.

// Temperature returns the outside air temperature, °F.
func Temperature(s *Snapshot) *float64 { return latest(s, SensorISS, FieldTemp) }

func DewPoint(s *Snapshot) *float64 { return latest(s, SensorISS, FieldDewPoint) }

// Humidity returns the relative humidity, %.
func Humidity(s *Snapshot) *float64 { return latest(s, SensorISS, FieldHum) }

func HeatIndex(s *Snapshot) *float64 { return latest(s, SensorISS, FieldHeatIndex) }

func WindChill(s *Snapshot) *float64 { return latest(s, SensorISS, FieldWindChill) }

func WetBulb(s *Snapshot) *float64 { return latest(s, SensorISS, FieldWetBulb) }

// THWIndex returns the temperature-humidity-wind index, °F.
func THWIndex(s *Snapshot) *float64 { return latest(s, SensorISS, FieldTHWIndex) }

func THSWIndex(s *Snapshot) *float64 { return latest(s, SensorISS, FieldTHSWIndex) }

func UVIndex(s *Snapshot) *float64 { return latest(s, SensorISS, FieldUVIndex) }

// SolarRadiation is in W/m².
func SolarRadiation(s *Snapshot) *float64 { return latest(s, SensorISS, FieldSolarRad) }

// Wind speed (mph) and direction (degrees) over the console's averaging windows.

func WindSpeedLast(s *Snapshot) *float64 { return latest(s, SensorISS, FieldWindSpeedLast) }

func WindSpeedAvg1Min(s *Snapshot) *float64 { return latest(s, SensorISS, FieldWindSpeedAvgLast1Min) }

func WindSpeedAvg2Min(s *Snapshot) *float64 { return latest(s, SensorISS, FieldWindSpeedAvgLast2Min) }

func WindSpeedAvg10Min(s *Snapshot) *float64 { return latest(s, SensorISS, FieldWindSpeedAvgLast10Min) }

// WindSpeedHi2Min returns the highest gust over the last 2 minutes.
func WindSpeedHi2Min(s *Snapshot) *float64 { return latest(s, SensorISS, FieldWindSpeedHiLast2Min) }

func WindSpeedHi10Min(s *Snapshot) *float64 { return latest(s, SensorISS, FieldWindSpeedHiLast10Min) }

func WindDirLast(s *Snapshot) *float64 { return latest(s, SensorISS, FieldWindDirLast) }

func WindDirAvg1Min(s *Snapshot) *float64 { return latest(s, SensorISS, FieldWindDirScalarAvgLast1Min) }

func WindDirAvg2Min(s *Snapshot) *float64 { return latest(s, SensorISS, FieldWindDirScalarAvgLast2Min) }

func WindDirAvg10Min(s *Snapshot) *float64 { return latest(s, SensorISS, FieldWindDirScalarAvgLast10Min) }

// WindDirAtHi2Min returns the direction of the 2-minute gust.
func WindDirAtHi2Min(s *Snapshot) *float64 { return latest(s, SensorISS, FieldWindDirAtHiSpeedLast2Min) }

func WindDirAtHi10Min(s *Snapshot) *float64 { return latest(s, SensorISS, FieldWindDirAtHiSpeedLast10Min) }

// Rain. The station reports every amount in both mm and inches.

// RainRateMM is in mm/h.
func RainRateMM(s *Snapshot) *float64 { return latest(s, SensorISS, FieldRainRateLastMM) }

// RainRateIn is in in/h.
func RainRateIn(s *Snapshot) *float64 { return latest(s, SensorISS, FieldRainRateLastIn) }

func RainRateHiMM(s *Snapshot) *float64 { return latest(s, SensorISS, FieldRainRateHiMM) }

func RainRateHiIn(s *Snapshot) *float64 { return latest(s, SensorISS, FieldRainRateHiIn) }

func Rainfall15MinMM(s *Snapshot) *float64 { return latest(s, SensorISS, FieldRainfallLast15MinMM) }

func Rainfall15MinIn(s *Snapshot) *float64 { return latest(s, SensorISS, FieldRainfallLast15MinIn) }

func Rainfall60MinMM(s *Snapshot) *float64 { return latest(s, SensorISS, FieldRainfallLast60MinMM) }

func Rainfall60MinIn(s *Snapshot) *float64 { return latest(s, SensorISS, FieldRainfallLast60MinIn) }

func Rainfall24HrMM(s *Snapshot) *float64 { return latest(s, SensorISS, FieldRainfallLast24HrMM) }

func Rainfall24HrIn(s *Snapshot) *float64 { return latest(s, SensorISS, FieldRainfallLast24HrIn) }

func RainfallDayMM(s *Snapshot) *float64 { return latest(s, SensorISS, FieldRainfallDayMM) }

func RainfallDayIn(s *Snapshot) *float64 { return latest(s, SensorISS, FieldRainfallDayIn) }

func RainfallMonthMM(s *Snapshot) *float64 { return latest(s, SensorISS, FieldRainfallMonthMM) }

func RainfallMonthIn(s *Snapshot) *float64 { return latest(s, SensorISS, FieldRainfallMonthIn) }

func RainfallYearMM(s *Snapshot) *float64 { return latest(s, SensorISS, FieldRainfallYearMM) }

func RainfallYearIn(s *Snapshot) *float64 { return latest(s, SensorISS, FieldRainfallYearIn) }

func RainStormLastMM(s *Snapshot) *float64 { return latest(s, SensorISS, FieldRainStormLastMM) }

func RainStormLastIn(s *Snapshot) *float64 { return latest(s, SensorISS, FieldRainStormLastIn) }

func RainStormCurrentMM(s *Snapshot) *float64 { return latest(s, SensorISS, FieldRainStormCurrentMM) }

func RainStormCurrentIn(s *Snapshot) *float64 { return latest(s, SensorISS, FieldRainStormCurrentIn) }

// ISS radio link.

// ISSSignal returns the last packet RSSI in dBm.
func ISSSignal(s *Snapshot) *float64 { return latest(s, SensorISS, FieldRSSILast) }

// ReceptionDay returns the percentage of packets received today.
func ReceptionDay(s *Snapshot) *float64 { return latest(s, SensorISS, FieldReceptionDay) }

// TransmitterBatteryFlag is 0 while the ISS battery is good and 1 when low.
func TransmitterBatteryFlag(s *Snapshot) *float64 { return latest(s, SensorISS, FieldTransBatteryFlag) }

// Barometer, inHg.

func BarometerSeaLevel(s *Snapshot) *float64 { return latest(s, SensorBarometer, FieldBarSeaLevel) }

func BarometerAbsolute(s *Snapshot) *float64 { return latest(s, SensorBarometer, FieldBarAbsolute) }

// BarometerTrend is the change over the last 3 hours.
func BarometerTrend(s *Snapshot) *float64 { return latest(s, SensorBarometer, FieldBarTrend) }

func BarometerOffset(s *Snapshot) *float64 { return latest(s, SensorBarometer, FieldBarOffset) }

// Indoor climate.

func IndoorTemperature(s *Snapshot) *float64 { return latest(s, SensorIndoor, FieldTempIn) }

func IndoorHumidity(s *Snapshot) *float64 { return latest(s, SensorIndoor, FieldHumIn) }

func IndoorDewPoint(s *Snapshot) *float64 { return latest(s, SensorIndoor, FieldDewPointIn) }

func IndoorHeatIndex(s *Snapshot) *float64 { return latest(s, SensorIndoor, FieldHeatIndexIn) }

func IndoorWetBulb(s *Snapshot) *float64 { return latest(s, SensorIndoor, FieldWetBulbIn) }

// Console health.

// BatteryVoltage is in millivolts.
func BatteryVoltage(s *Snapshot) *float64 { return latest(s, SensorHealth, FieldBatteryVoltage) }

func BatteryPercent(s *Snapshot) *float64 { return latest(s, SensorHealth, FieldBatteryPercent) }

// WifiSignal is in dBm.
func WifiSignal(s *Snapshot) *float64 { return latest(s, SensorHealth, FieldWifiRSSI) }

// Uptime is the number of seconds since the console OS booted.
func Uptime(s *Snapshot) *float64 { return latest(s, SensorHealth, FieldOSUptime) }

func AppUptime(s *Snapshot) *float64 { return latest(s, SensorHealth, FieldAppUptime) }

// FreeMemory is in bytes.
func FreeMemory(s *Snapshot) *float64 { return latest(s, SensorHealth, FieldFreeMem) }

// FirmwareVersion returns the console software version.
func FirmwareVersion(s *Snapshot) *string {
	r, ok := LatestRecord(s, SensorHealth)
	if !ok {
		return nil
	}
	return clone(r.ConsoleSWVersion)
}
