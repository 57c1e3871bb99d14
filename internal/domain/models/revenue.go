package models

// RevenueStat is the ticket revenue of one airline.
type RevenueStat struct {
	AirlineID   string  `json:"airline_id"`
	AirlineName string  `json:"airline_name"`
	Revenue     float64 `json:"revenue"`
	FlightCount int     `json:"flight_count"`
}

type RevenueReport struct {
	AirlineName string        `json:"airline_name,omitempty"`
	Month       string        `json:"month,omitempty"` // YYYY-MM
	Stats       []RevenueStat `json:"stats"`
	Total       float64       `json:"total"`
}
