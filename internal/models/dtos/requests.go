package dtos

import "time"

type RegisterAccountReq struct {
	CompanyName string `json:"company_name" validate:"required,max=200"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreatePlaneReq struct {
	TailNumber   string  `json:"tail_number" validate:"required,max=20"`
	Model        string  `json:"model" validate:"required,max=100"`
	Manufacturer string  `json:"manufacturer" validate:"required,max=100"`
	Nickname     *string `json:"nickname" validate:"omitempty,max=100"`
	NumEngines   *int    `json:"num_engines" validate:"omitnil,min=1"`
	NumSeats     *int    `json:"num_seats" validate:"omitnil,min=1"`
}

type UpdatePlaneReq struct {
	TailNumber   *string `json:"tail_number" validate:"omitempty,min=1,max=20"`
	Model        *string `json:"model" validate:"omitempty,min=1,max=100"`
	Manufacturer *string `json:"manufacturer" validate:"omitempty,min=1,max=100"`
	Nickname     *string `json:"nickname" validate:"omitempty,max=100"`
	NumEngines   *int    `json:"num_engines" validate:"omitnil,min=1"`
	NumSeats     *int    `json:"num_seats" validate:"omitnil,min=1"`
}

type CreatePilotReq struct {
	Name          string   `json:"name" validate:"required,max=200"`
	LicenseNumber string   `json:"license_number" validate:"required,max=50"`
	Rating        *string  `json:"rating" validate:"omitempty,max=50"`
	TotalHours    *float64 `json:"total_hours" validate:"omitnil,gte=0"`
	ContactNumber *string  `json:"contact_number" validate:"omitempty,max=30"`
	Email         *string  `json:"email" validate:"omitempty,email"`
}

type UpdatePilotReq struct {
	Name          *string  `json:"name" validate:"omitempty,min=1,max=200"`
	LicenseNumber *string  `json:"license_number" validate:"omitempty,min=1,max=50"`
	Rating        *string  `json:"rating" validate:"omitempty,max=50"`
	TotalHours    *float64 `json:"total_hours" validate:"omitnil,gte=0"`
	ContactNumber *string  `json:"contact_number" validate:"omitempty,max=30"`
	Email         *string  `json:"email" validate:"omitempty,email"`
}

type CreateTripReq struct {
	PlaneID          string     `json:"plane_id" validate:"required"`
	PilotID          *string    `json:"pilot_id"`
	DepartureAirport string     `json:"departure_airport" validate:"required,min=3,max=4"`
	ArrivalAirport   string     `json:"arrival_airport" validate:"required,min=3,max=4"`
	DepartureTime    *time.Time `json:"departure_time" validate:"required"`
}

// UpdateTripReq carries only the fields to change. An empty pilot_id unassigns the pilot.
type UpdateTripReq struct {
	PlaneID             *string    `json:"plane_id" validate:"omitnil,min=1"`
	PilotID             *string    `json:"pilot_id"`
	DepartureAirport    *string    `json:"departure_airport" validate:"omitempty,min=3,max=4"`
	ArrivalAirport      *string    `json:"arrival_airport" validate:"omitempty,min=3,max=4"`
	DepartureTime       *time.Time `json:"departure_time"`
	Status              *string    `json:"status" validate:"omitempty,oneof=scheduled departed arrived"`
	ActualDepartureTime *time.Time `json:"actual_departure_time"`
	ActualArrivalTime   *time.Time `json:"actual_arrival_time"`
}
