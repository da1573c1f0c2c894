package api

import (
	"net/http"
	"time"

	"charter-ops/hangar/internal/common"
	"charter-ops/hangar/internal/constants"
	"charter-ops/hangar/internal/models/dtos"
	"charter-ops/hangar/internal/services"

	"github.com/go-chi/chi/v5"
)

// ListTrips handles GET /api/v1/trips?status=
//
// @Summary      List trips
// @Tags         Trips
// @Produce      json
// @Param        status  query  string  false  "scheduled, departed or arrived"
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Router       /api/v1/trips [get]
func (h *Handlers) ListTrips() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		trips, err := h.deps.Services.Trips.List(r.Context(), ownerID(r), r.URL.Query().Get("status"))
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		resp := make([]dtos.TripResponse, 0, len(trips))
		for i := range trips {
			resp = append(resp, toTripResponse(&trips[i]))
		}

		common.RespondSuccess(w, initTime, "Trips fetched successfully", resp)
	}
}

// CreateTrip handles POST /api/v1/trips. Arrival time and costs are computed server-side.
//
// @Summary      Schedule a trip
// @Tags         Trips
// @Accept       json
// @Produce      json
// @Param        input  body  dtos.CreateTripReq  true  "Trip"
// @Success      201  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Failure      404  {object}  dtos.APIResponse
// @Failure      422  {object}  dtos.APIResponse
// @Router       /api/v1/trips [post]
func (h *Handlers) CreateTrip() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateTripReq
		if err := decodeBody(r, &req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidRequestBody, http.StatusBadRequest)
			return
		}

		trip, err := h.deps.Services.Trips.Create(r.Context(), ownerID(r), services.CreateTripInput{
			PlaneID:          req.PlaneID,
			PilotID:          req.PilotID,
			DepartureAirport: req.DepartureAirport,
			ArrivalAirport:   req.ArrivalAirport,
			DepartureTime:    *req.DepartureTime,
		})
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Trip scheduled", toTripResponse(trip), http.StatusCreated)
	}
}

func (h *Handlers) GetTrip() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		trip, err := h.deps.Services.Trips.Get(r.Context(), ownerID(r), chi.URLParam(r, "tripID"))
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Trip fetched successfully", toTripResponse(trip))
	}
}

// UpdateTrip handles PUT /api/v1/trips/{tripID}. Omitted fields are left unchanged.
func (h *Handlers) UpdateTrip() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.UpdateTripReq
		if err := decodeBody(r, &req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidRequestBody, http.StatusBadRequest)
			return
		}

		patch := services.TripPatch{
			PlaneID:             req.PlaneID,
			PilotID:             req.PilotID,
			DepartureAirport:    req.DepartureAirport,
			ArrivalAirport:      req.ArrivalAirport,
			DepartureTime:       req.DepartureTime,
			ActualDepartureTime: req.ActualDepartureTime,
			ActualArrivalTime:   req.ActualArrivalTime,
		}
		if req.Status != nil {
			status := constants.TripStatus(*req.Status)
			patch.Status = &status
		}

		trip, err := h.deps.Services.Trips.Update(r.Context(), ownerID(r), chi.URLParam(r, "tripID"), patch)
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Trip updated", toTripResponse(trip))
	}
}

// DeleteTrip handles DELETE /api/v1/trips/{tripID}. Only scheduled trips can be deleted.
func (h *Handlers) DeleteTrip() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.Trips.Delete(r.Context(), ownerID(r), chi.URLParam(r, "tripID")); err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Trip deleted", nil)
	}
}

// GetTripRoute handles GET /api/v1/trips/{tripID}/route
func (h *Handlers) GetTripRoute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		route, err := h.deps.Services.Trips.Route(r.Context(), ownerID(r), chi.URLParam(r, "tripID"))
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Trip route fetched successfully", dtos.TripRouteResponse{
			TripID:     route.Trip.ID,
			Status:     string(route.Trip.Status),
			Departure:  toAirportResponse(route.Departure),
			Arrival:    toAirportResponse(route.Arrival),
			DistanceNM: route.DistanceNM,
		})
	}
}
