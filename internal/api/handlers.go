package api

import (
	"net/http"

	"charter-ops/hangar/internal/auth"
	"charter-ops/hangar/internal/common"
	"charter-ops/hangar/internal/models/dtos"
	gormModels "charter-ops/hangar/internal/models/gorm"
	"charter-ops/hangar/internal/services"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

// ownerID returns the authenticated account id, or "" when the request carries no claims
func ownerID(r *http.Request) string {
	claims := auth.GetUserClaims(r.Context())
	if claims == nil {
		return ""
	}
	return claims.AccountID()
}

func requestID(r *http.Request) string {
	return auth.GetRequestID(r.Context())
}

func toAccountResponse(a *gormModels.Account) dtos.AccountResponse {
	return dtos.AccountResponse{
		ID:          a.ID,
		CompanyName: a.CompanyName,
		Email:       a.Email,
		CreatedAt:   a.CreatedAt,
	}
}

func toAuthResponse(s *services.Session) dtos.AuthResponse {
	return dtos.AuthResponse{
		Token:     s.Token.Token,
		ExpiresAt: s.Token.ExpiresAt,
		Account:   toAccountResponse(s.Account),
	}
}

func toAirportResponse(a common.Airport) dtos.AirportResponse {
	return dtos.AirportResponse{
		ICAO:          a.ICAO,
		IATA:          a.IATA,
		Name:          a.Name,
		City:          a.City,
		Country:       a.Country,
		Coordinates:   a.Coordinates(),
		ElevationFeet: a.ElevationFeet,
	}
}

func toPlaneResponse(p *gormModels.Plane) dtos.PlaneResponse {
	return dtos.PlaneResponse{
		ID:           p.ID,
		TailNumber:   p.TailNumber,
		Model:        p.Model,
		Manufacturer: p.Manufacturer,
		Nickname:     p.Nickname,
		NumEngines:   p.NumEngines,
		NumSeats:     p.NumSeats,
		CreatedAt:    p.CreatedAt,
	}
}

func toPilotResponse(p *gormModels.Pilot) dtos.PilotResponse {
	return dtos.PilotResponse{
		ID:            p.ID,
		Name:          p.Name,
		LicenseNumber: p.LicenseNumber,
		Rating:        p.Rating,
		TotalHours:    p.TotalHours,
		ContactNumber: p.ContactNumber,
		Email:         p.Email,
		CreatedAt:     p.CreatedAt,
	}
}

func toTripResponse(t *gormModels.Trip) dtos.TripResponse {
	return dtos.TripResponse{
		ID:                   t.ID,
		PlaneID:              t.PlaneID,
		PilotID:              t.PilotID,
		DepartureAirport:     t.DepartureAirport,
		ArrivalAirport:       t.ArrivalAirport,
		DepartureTime:        t.DepartureTime,
		EstimatedArrivalTime: t.EstimatedArrivalTime,
		ActualDepartureTime:  t.ActualDepartureTime,
		ActualArrivalTime:    t.ActualArrivalTime,
		Status:               string(t.Status),
		EstimatedFuelCost:    t.EstimatedFuelCost,
		EstimatedTotalCost:   t.EstimatedTotalCost,
	}
}
