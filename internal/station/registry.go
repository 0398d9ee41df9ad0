package station

import "strconv"

// SensorType is the integer code the station uses to tag a sensor block.
type SensorType int

const (
	SensorISS       SensorType = 43  // Integrated Sensor Suite (outdoor weather)
	SensorBarometer SensorType = 242 // Barometric pressure
	SensorIndoor    SensorType = 365 // Indoor temperature/humidity
	SensorHealth    SensorType = 509 // Console health/status
)

// Known reports whether t belongs to the registry. Unknown codes still decode
// but no derived quantity reads from them.
func (t SensorType) Known() bool {
	switch t {
	case SensorISS, SensorBarometer, SensorIndoor, SensorHealth:
		return true
	default:
		return false
	}
}

func (t SensorType) String() string {
	switch t {
	case SensorISS:
		return "iss"
	case SensorBarometer:
		return "barometer"
	case SensorIndoor:
		return "indoor"
	case SensorHealth:
		return "health"
	default:
		return "sensor(" + strconv.Itoa(int(t)) + ")"
	}
}

// DataStructureType describes the record layout of a sensor block.
type DataStructureType int

const (
	StructureBarometerCurrent  DataStructureType = 19
	StructureBarometerHistoric DataStructureType = 20
	StructureIndoorCurrent     DataStructureType = 21
	StructureIndoorHistoric    DataStructureType = 22
	StructureISSCurrent        DataStructureType = 23
	StructureISSHistoric       DataStructureType = 24
	StructureHealth            DataStructureType = 27
)

// Historic reports whether the layout carries archive records.
func (d DataStructureType) Historic() bool {
	switch d {
	case StructureBarometerHistoric, StructureIndoorHistoric, StructureISSHistoric:
		return true
	default:
		return false
	}
}
