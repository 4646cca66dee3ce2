// Package snapshot defines the data published by the parking backend on its
// dashboard endpoint and the HTTP client that fetches it.
package snapshot

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Snapshot is the unit of data received per poll. Every field is optional;
// a missing field decodes to its zero value, which callers treat as empty.
type Snapshot struct {
	Summary map[string]interface{} `json:"summary"`
	Lots    []LotStatus            `json:"lots"`
	Spaces  []SpaceStatus          `json:"spaces"`
}

// LotStatus is the aggregate occupancy of a single parking lot.
type LotStatus struct {
	LotID       string    `json:"lotId"`
	Name        string    `json:"name,omitempty"`
	Free        int       `json:"free"`
	Occupied    int       `json:"occupied,omitempty"`
	TotalSpaces int       `json:"totalSpaces"`
	LastUpdate  Timestamp `json:"lastUpdate"`
}

// UnmarshalJSON decodes a lot. When the backend omits free, it is derived
// as totalSpaces - occupied, never below zero. A null free counts as zero.
func (l *LotStatus) UnmarshalJSON(data []byte) error {
	type lotFields LotStatus
	aux := struct {
		*lotFields
		Free jsoniter.RawMessage `json:"free"`
	}{lotFields: (*lotFields)(l)}

	if err := jsonAPI.Unmarshal(data, &aux); err != nil {
		return err
	}

	switch raw := strings.TrimSpace(string(aux.Free)); raw {
	case "":
		l.Free = max(0, l.TotalSpaces-l.Occupied)
	case "null":
		l.Free = 0
	default:
		return jsonAPI.Unmarshal(aux.Free, &l.Free)
	}
	return nil
}

// SpaceStatus is the last reported state of one space sensor.
type SpaceStatus struct {
	LotID        string    `json:"lotId"`
	SpaceID      string    `json:"spaceId"`
	Occupied     bool      `json:"occupied"`
	SensorOnline bool      `json:"sensorOnline"`
	LastSeen     Timestamp `json:"lastSeen"`
}

// normalize fills identifiers the backend left implicit. A lot published
// without lotId is identified by its resource name, upper-cased.
func (s *Snapshot) normalize() {
	for i := range s.Lots {
		lot := &s.Lots[i]
		if lot.LotID == "" && lot.Name != "" {
			lot.LotID = strings.ToUpper(lot.Name)
		}
	}
}
