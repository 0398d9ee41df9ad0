package station

import (
	"encoding/json"
	"sort"
)

// Record is one sample from a sensor block. Every known key is an optional
// field; a nil pointer means the station did not send the key or sent null.
// Keys the model does not know about land in Extra untouched.
//
// All temperatures are Fahrenheit, wind speeds mph, pressures inHg. Rainfall
// comes paired in millimetres and inches.
type Record struct {
	TS       *int64
	TZOffset *int64

	// Outdoor climate (ISS, current).
	Temp      *float64
	Hum       *float64
	DewPoint  *float64
	HeatIndex *float64
	WindChill *float64
	WetBulb   *float64
	THWIndex  *float64
	THSWIndex *float64
	WBGT      *float64
	UVIndex   *float64
	SolarRad  *float64

	WindSpeedLast         *float64
	WindSpeedAvgLast1Min  *float64
	WindSpeedAvgLast2Min  *float64
	WindSpeedAvgLast10Min *float64
	WindSpeedHiLast2Min   *float64
	WindSpeedHiLast10Min  *float64

	WindDirLast               *float64
	WindDirScalarAvgLast1Min  *float64
	WindDirScalarAvgLast2Min  *float64
	WindDirScalarAvgLast10Min *float64
	WindDirAtHiSpeedLast2Min  *float64
	WindDirAtHiSpeedLast10Min *float64

	RainRateLastMM *float64
	RainRateLastIn *float64
	RainRateHiMM   *float64
	RainRateHiIn   *float64

	RainfallLast15MinMM *float64
	RainfallLast15MinIn *float64
	RainfallLast60MinMM *float64
	RainfallLast60MinIn *float64
	RainfallLast24HrMM  *float64
	RainfallLast24HrIn  *float64
	RainfallDayMM       *float64
	RainfallDayIn       *float64
	RainfallMonthMM     *float64
	RainfallMonthIn     *float64
	RainfallYearMM      *float64
	RainfallYearIn      *float64
	RainStormLastMM     *float64
	RainStormLastIn     *float64
	RainStormCurrentMM  *float64
	RainStormCurrentIn  *float64

	RSSILast         *float64
	ReceptionDay     *float64
	TransBatteryFlag *float64

	// Outdoor climate (ISS, archive intervals).
	TempLast       *float64
	TempAvg        *float64
	TempHi         *float64
	TempLo         *float64
	HumLast        *float64
	DewPointLast   *float64
	HeatIndexLast  *float64
	WindChillLast  *float64
	WindSpeedAvg   *float64
	WindSpeedHi    *float64
	WindDirPrevail *float64
	WindDirOfHi    *float64
	RainfallMM     *float64
	RainfallIn     *float64

	// Barometer.
	BarSeaLevel *float64
	BarAbsolute *float64
	BarTrend    *float64
	BarOffset   *float64

	// Indoor.
	TempIn      *float64
	HumIn       *float64
	DewPointIn  *float64
	HeatIndexIn *float64
	WetBulbIn   *float64

	// Console health.
	BatteryVoltage *float64
	BatteryPercent *float64
	WifiRSSI       *float64
	OSUptime       *float64
	AppUptime      *float64
	FreeMem        *float64

	ConsoleSWVersion    *string
	ConsoleOSVersion    *string
	ConsoleRadioVersion *string

	// Extra holds keys without a typed field, verbatim.
	Extra map[string]json.RawMessage
}

const (
	keyTS       = "ts"
	keyTZOffset = "tz_offset"
)

// UnmarshalJSON decodes known keys into typed fields one at a time, so a
// single malformed value never discards the rest of the record. A value whose
// JSON type does not fit its field is kept in Extra instead.
func (r *Record) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*r = Record{}
	for key, val := range raw {
		if !r.decodeKnown(key, val) {
			if r.Extra == nil {
				r.Extra = make(map[string]json.RawMessage)
			}
			r.Extra[key] = val
		}
	}
	return nil
}

func (r *Record) decodeKnown(key string, val json.RawMessage) bool {
	switch key {
	case keyTS:
		return decodeInto(val, &r.TS)
	case keyTZOffset:
		return decodeInto(val, &r.TZOffset)
	}
	if ref, ok := stringFields[key]; ok {
		return decodeInto(val, ref(r))
	}
	if f, ok := fieldsByKey[key]; ok {
		return decodeInto(val, f.ref(r))
	}
	return false
}

// decodeInto only touches dst when val decodes cleanly.
func decodeInto[T any](val json.RawMessage, dst **T) bool {
	var v *T
	if err := json.Unmarshal(val, &v); err != nil {
		return false
	}
	*dst = v
	return true
}

// MarshalJSON writes the record back in the station's wire shape. Absent
// fields are omitted; Extra keys are emitted unchanged.
func (r Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Extra)+8)
	for k, v := range r.Extra {
		out[k] = v
	}
	if r.TS != nil {
		out[keyTS] = *r.TS
	}
	if r.TZOffset != nil {
		out[keyTZOffset] = *r.TZOffset
	}
	for key, ref := range stringFields {
		if v := *ref(&r); v != nil {
			out[key] = *v
		}
	}
	for key, f := range fieldsByKey {
		if v := f.Value(&r); v != nil {
			out[key] = *v
		}
	}
	return json.Marshal(out)
}

// Keys lists every key present on the record, typed or extra, sorted.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	var keys []string
	if r.TS != nil {
		keys = append(keys, keyTS)
	}
	if r.TZOffset != nil {
		keys = append(keys, keyTZOffset)
	}
	for key, ref := range stringFields {
		if *ref(r) != nil {
			keys = append(keys, key)
		}
	}
	for key, f := range fieldsByKey {
		if f.Value(r) != nil {
			keys = append(keys, key)
		}
	}
	for key := range r.Extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
