package station

import "time"

// Snapshot is one payload from the station API: the current conditions or a
// historic window, block per sensor.
type Snapshot struct {
	StationID   *int64        `json:"station_id,omitempty"`
	StationUUID string        `json:"station_id_uuid,omitempty"`
	GeneratedAt *int64        `json:"generated_at"`
	Sensors     []SensorBlock `json:"sensors"`
}

// SensorBlock carries the records of one physical or logical sensor. For a
// current snapshot Records holds exactly one element; for a historic fetch it
// holds one per archive interval in chronological order.
type SensorBlock struct {
	LSID              *int64            `json:"lsid,omitempty"`
	SensorType        SensorType        `json:"sensor_type"`
	DataStructureType DataStructureType `json:"data_structure_type,omitempty"`
	Records           []Record          `json:"data"`
}

// Generated returns the instant the snapshot was produced.
func (s *Snapshot) Generated() (time.Time, bool) {
	if s == nil || s.GeneratedAt == nil {
		return time.Time{}, false
	}
	return time.Unix(*s.GeneratedAt, 0).UTC(), true
}

// Time returns the record timestamp.
func (r *Record) Time() (time.Time, bool) {
	if r == nil || r.TS == nil {
		return time.Time{}, false
	}
	return time.Unix(*r.TS, 0).UTC(), true
}

// FindSensor returns the first block of type t. Duplicates beyond the first
// are ignored.
func FindSensor(s *Snapshot, t SensorType) (*SensorBlock, bool) {
	if s == nil {
		return nil, false
	}
	for i := range s.Sensors {
		if s.Sensors[i].SensorType == t {
			return &s.Sensors[i], true
		}
	}
	return nil, false
}

// LatestRecord returns the first record of the matching block.
func LatestRecord(s *Snapshot, t SensorType) (*Record, bool) {
	block, ok := FindSensor(s, t)
	if !ok || len(block.Records) == 0 {
		return nil, false
	}
	return &block.Records[0], true
}

// AllRecords returns the records of the matching block, or an empty slice.
func AllRecords(s *Snapshot, t SensorType) []Record {
	block, ok := FindSensor(s, t)
	if !ok || block.Records == nil {
		return []Record{}
	}
	return block.Records
}

// LastUpdated reports when the station last sampled: the timestamp of the
// first sensor's latest record, falling back to the snapshot's generation
// time.
func LastUpdated(s *Snapshot) (time.Time, bool) {
	if s == nil {
		return time.Time{}, false
	}
	if len(s.Sensors) > 0 && len(s.Sensors[0].Records) > 0 {
		if ts, ok := s.Sensors[0].Records[0].Time(); ok {
			return ts, true
		}
	}
	return s.Generated()
}
