package units

// Trend classifies the barometer's 3-hour change.
type Trend string

const (
	TrendUnknown        Trend = "unknown"
	TrendRisingRapidly  Trend = "rising_rapidly"
	TrendRising         Trend = "rising"
	TrendSteady         Trend = "steady"
	TrendFalling        Trend = "falling"
	TrendFallingRapidly Trend = "falling_rapidly"
)

// PressureTrend classifies a bar_trend value in inHg.
func PressureTrend(change *float64) Trend {
	switch {
	case change == nil:
		return TrendUnknown
	case *change > RisingRapidlyAbove:
		return TrendRisingRapidly
	case *change > RisingAbove:
		return TrendRising
	case *change >= SteadyFrom:
		return TrendSteady
	case *change >= FallingFrom:
		return TrendFalling
	default:
		return TrendFallingRapidly
	}
}

// Quality grades a link or reception measurement.
type Quality string

const (
	QualityUnknown   Quality = "unknown"
	QualityExcellent Quality = "excellent"
	QualityGood      Quality = "good"
	QualityFair      Quality = "fair"
	QualityPoor      Quality = "poor"
	QualityBad       Quality = "bad"
)

// SignalQuality grades an RSSI in dBm.
func SignalQuality(rssi *float64) Quality {
	switch {
	case rssi == nil:
		return QualityUnknown
	case *rssi >= SignalExcellent:
		return QualityExcellent
	case *rssi >= SignalGood:
		return QualityGood
	case *rssi >= SignalFair:
		return QualityFair
	case *rssi >= SignalPoor:
		return QualityPoor
	default:
		return QualityBad
	}
}

// ReceptionQuality grades the percentage of packets received.
func ReceptionQuality(pct *float64) Quality {
	switch {
	case pct == nil:
		return QualityUnknown
	case *pct >= ReceptionExcellent:
		return QualityExcellent
	case *pct >= ReceptionGood:
		return QualityGood
	case *pct >= ReceptionFair:
		return QualityFair
	case *pct >= ReceptionPoor:
		return QualityPoor
	default:
		return QualityBad
	}
}

// BatteryState interprets the transmitter battery flag.
type BatteryState string

const (
	BatteryUnknown BatteryState = "unknown"
	BatteryGood    BatteryState = "good"
	BatteryLow     BatteryState = "low"
)

func BatteryStatus(flag *float64) BatteryState {
	switch {
	case flag == nil:
		return BatteryUnknown
	case *flag == BatteryFlagGood:
		return BatteryGood
	default:
		return BatteryLow
	}
}
