package station

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSnapshot(t *testing.T, path string) *Snapshot {
	t.Helper()

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var s Snapshot
	require.NoError(t, json.Unmarshal(b, &s))
	return &s
}

func ptr(v float64) *float64 { return &v }

func TestDecodeCurrentSnapshot(t *testing.T) {
	s := loadSnapshot(t, "testdata/current.json")

	require.Len(t, s.Sensors, 4)
	gen, ok := s.Generated()
	require.True(t, ok)
	assert.Equal(t, int64(1720544057), gen.Unix())

	iss, ok := LatestRecord(s, SensorISS)
	require.True(t, ok)
	require.NotNil(t, iss.TS)
	assert.Equal(t, int64(1720544040), *iss.TS)
	assert.Equal(t, 67.3, *iss.Temp)

	// null in the payload stays absent.
	assert.Nil(t, iss.UVIndex)
	assert.Nil(t, iss.THSWIndex)

	// Unknown keys are preserved verbatim.
	assert.JSONEq(t, "4", string(iss.Extra["freq_index"]))
	assert.Contains(t, iss.Extra, "rain_storm_last_start_at")
	assert.NotContains(t, iss.Extra, "temp")
}

func TestRecordRoundTrip(t *testing.T) {
	in := `{"ts":1720544040,"temp":67.3,"hum":null,"console_sw_version":"1.4.43","future_key":{"a":1}}`

	var r Record
	require.NoError(t, json.Unmarshal([]byte(in), &r))
	assert.Nil(t, r.Hum)
	assert.Equal(t, []string{"console_sw_version", "future_key", "temp", "ts"}, r.Keys())

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ts":1720544040,"temp":67.3,"console_sw_version":"1.4.43","future_key":{"a":1}}`, string(out))
}

func TestRecordKeepsMistypedValuesAside(t *testing.T) {
	var r Record
	require.NoError(t, json.Unmarshal([]byte(`{"temp":"warm","hum":50}`), &r))

	assert.Nil(t, r.Temp)
	require.NotNil(t, r.Hum)
	assert.Equal(t, 50.0, *r.Hum)
	assert.JSONEq(t, `"warm"`, string(r.Extra["temp"]))
}

func TestExtractionOnMissingData(t *testing.T) {
	t.Run("nil snapshot", func(t *testing.T) {
		_, ok := FindSensor(nil, SensorISS)
		assert.False(t, ok)
		_, ok = LatestRecord(nil, SensorISS)
		assert.False(t, ok)
		assert.NotNil(t, AllRecords(nil, SensorISS))
		assert.Empty(t, AllRecords(nil, SensorISS))
	})

	t.Run("empty record array", func(t *testing.T) {
		s := &Snapshot{Sensors: []SensorBlock{{SensorType: SensorISS}}}
		_, ok := FindSensor(s, SensorISS)
		assert.True(t, ok)
		_, ok = LatestRecord(s, SensorISS)
		assert.False(t, ok)
		assert.Empty(t, AllRecords(s, SensorISS))
	})

	t.Run("first duplicate wins", func(t *testing.T) {
		s := &Snapshot{Sensors: []SensorBlock{
			{SensorType: SensorISS, Records: []Record{{Temp: ptr(50)}}},
			{SensorType: SensorISS, Records: []Record{{Temp: ptr(60)}}},
		}}
		assert.Equal(t, 50.0, *Temperature(s))
	})

	t.Run("unknown sensor type is preserved", func(t *testing.T) {
		s := &Snapshot{Sensors: []SensorBlock{{SensorType: 37, Records: []Record{{Temp: ptr(50)}}}}}
		_, ok := FindSensor(s, 37)
		assert.True(t, ok)
		assert.False(t, SensorType(37).Known())
		assert.Nil(t, Temperature(s))
	})
}

func TestQuantities(t *testing.T) {
	s := loadSnapshot(t, "testdata/current.json")

	cases := []struct {
		name string
		got  *float64
		want float64
	}{
		{"temperature", Temperature(s), 67.3},
		{"humidity", Humidity(s), 78.7},
		{"dew point", DewPoint(s), 60.5},
		{"thw", THWIndex(s), 68.2},
		{"wind last", WindSpeedLast(s), 7},
		{"wind 10 min avg", WindSpeedAvg10Min(s), 4.52},
		{"wind dir last", WindDirLast(s), 300},
		{"wind dir at hi 10 min", WindDirAtHi10Min(s), 342},
		{"rain day mm", RainfallDayMM(s), 0},
		{"rain year mm", RainfallYearMM(s), 42.672},
		{"rain year in", RainfallYearIn(s), 1.68},
		{"bar sea level", BarometerSeaLevel(s), 29.866},
		{"bar trend", BarometerTrend(s), -0.038},
		{"indoor temp", IndoorTemperature(s), 75.7},
		{"indoor hum", IndoorHumidity(s), 58.6},
		{"battery percent", BatteryPercent(s), 100},
		{"wifi", WifiSignal(s), -55},
		{"uptime", Uptime(s), 450841},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NotNil(t, tc.got)
			assert.Equal(t, tc.want, *tc.got)
		})
	}

	require.NotNil(t, FirmwareVersion(s))
	assert.Equal(t, "1.4.43", *FirmwareVersion(s))
	assert.Nil(t, UVIndex(s))
}

func TestQuantitiesAbsentWhenSensorMissing(t *testing.T) {
	s := &Snapshot{Sensors: []SensorBlock{
		{SensorType: SensorISS, Records: []Record{{Temp: ptr(0), RainfallDayMM: ptr(0)}}},
	}}

	// A zero reading is a reading.
	require.NotNil(t, Temperature(s))
	assert.Equal(t, 0.0, *Temperature(s))
	require.NotNil(t, RainfallDayMM(s))

	for name, fn := range map[string]func(*Snapshot) *float64{
		"bar sea level":  BarometerSeaLevel,
		"bar absolute":   BarometerAbsolute,
		"bar trend":      BarometerTrend,
		"bar offset":     BarometerOffset,
		"indoor temp":    IndoorTemperature,
		"indoor hum":     IndoorHumidity,
		"indoor dew":     IndoorDewPoint,
		"indoor heat":    IndoorHeatIndex,
		"indoor wetbulb": IndoorWetBulb,
		"battery":        BatteryVoltage,
		"battery pct":    BatteryPercent,
		"wifi":           WifiSignal,
		"uptime":         Uptime,
		"free mem":       FreeMemory,
		"humidity":       Humidity,
	} {
		assert.Nil(t, fn(s), name)
	}
	assert.Nil(t, FirmwareVersion(s))
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := &Snapshot{Sensors: []SensorBlock{{SensorType: SensorISS, Records: []Record{{Temp: ptr(10)}}}}}

	v := Temperature(s)
	*v = 99
	assert.Equal(t, 10.0, *Temperature(s))
}

func TestLastUpdated(t *testing.T) {
	s := loadSnapshot(t, "testdata/current.json")
	ts, ok := LastUpdated(s)
	require.True(t, ok)
	assert.Equal(t, time.Unix(1720544040, 0).UTC(), ts)

	gen := int64(1720544057)
	ts, ok = LastUpdated(&Snapshot{GeneratedAt: &gen})
	require.True(t, ok)
	assert.Equal(t, gen, ts.Unix())

	_, ok = LastUpdated(&Snapshot{})
	assert.False(t, ok)
}
