package dtos

import "time"

type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

type AccountResponse struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"company_name"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}

type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Account   AccountResponse `json:"account"`
}

// AirportResponse carries coordinates as [longitude, latitude] for the map widget
type AirportResponse struct {
	ICAO          string     `json:"icao"`
	IATA          string     `json:"iata,omitempty"`
	Name          string     `json:"name"`
	City          string     `json:"city"`
	Country       string     `json:"country"`
	Coordinates   [2]float64 `json:"coordinates"`
	ElevationFeet int        `json:"elevation_feet"`
}

type PlaneResponse struct {
	ID           string    `json:"id"`
	TailNumber   string    `json:"tail_number"`
	Model        string    `json:"model"`
	Manufacturer string    `json:"manufacturer"`
	Nickname     *string   `json:"nickname,omitempty"`
	NumEngines   int       `json:"num_engines"`
	NumSeats     int       `json:"num_seats"`
	CreatedAt    time.Time `json:"created_at"`
}

type PilotResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	LicenseNumber string    `json:"license_number"`
	Rating        *string   `json:"rating,omitempty"`
	TotalHours    *float64  `json:"total_hours,omitempty"`
	ContactNumber *string   `json:"contact_number,omitempty"`
	Email         *string   `json:"email,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type TripResponse struct {
	ID                   string     `json:"id"`
	PlaneID              string     `json:"plane_id"`
	PilotID              *string    `json:"pilot_id,omitempty"`
	DepartureAirport     string     `json:"departure_airport"`
	ArrivalAirport       string     `json:"arrival_airport"`
	DepartureTime        time.Time  `json:"departure_time"`
	EstimatedArrivalTime time.Time  `json:"estimated_arrival_time"`
	ActualDepartureTime  *time.Time `json:"actual_departure_time,omitempty"`
	ActualArrivalTime    *time.Time `json:"actual_arrival_time,omitempty"`
	Status               string     `json:"status"`
	EstimatedFuelCost    int64      `json:"estimated_fuel_cost"`
	EstimatedTotalCost   int64      `json:"estimated_total_cost"`
}

type TripRouteResponse struct {
	TripID     string          `json:"trip_id"`
	Status     string          `json:"status"`
	Departure  AirportResponse `json:"departure"`
	Arrival    AirportResponse `json:"arrival"`
	DistanceNM float64         `json:"distance_nm"`
}

type TripCounts struct {
	Scheduled int64 `json:"scheduled"`
	Departed  int64 `json:"departed"`
	Arrived   int64 `json:"arrived"`
	Total     int64 `json:"total"`
}

type DashboardSummary struct {
	Planes             int64      `json:"planes"`
	Pilots             int64      `json:"pilots"`
	Trips              TripCounts `json:"trips"`
	EstimatedTotalCost int64      `json:"estimated_total_cost"`
}
