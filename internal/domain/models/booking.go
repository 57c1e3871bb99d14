package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlightID holds flight and plane identifiers. It accepts either a JSON string
// ("CB1") or a JSON number (42) and always encodes back as a string.
type FlightID string

func (id *FlightID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlightID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return err
	}
	*id = FlightID(n.String())
	return nil
}

func (id FlightID) String() string { return string(id) }

// Airline is the nested airline object of a booking record.
type Airline struct {
	Name string `json:"name"`
}

// BookingRecord is one entry of the booking-search list. Records are read-only
// snapshots; every search replaces the previous list.
type BookingRecord struct {
	ID          FlightID `json:"id"`
	Airline     Airline  `json:"airlines"`
	PlaneID     FlightID `json:"plane_id"`
	DepartingAt string   `json:"departing_at"`
	ArrivingAt  string   `json:"arriving_at"`
}

// FlightDetail backs the /flight/{id} page.
type FlightDetail struct {
	ID          FlightID `json:"id"`
	Name        string   `json:"name"`
	AirlineName string   `json:"airline_name"`
	PlaneID     FlightID `json:"plane_id"`
	DepartingAt string   `json:"departing_at"`
	ArrivingAt  string   `json:"arriving_at"`
}
