package api

import (
	"net/http"
	"strconv"
	"time"

	"charter-ops/hangar/internal/common"
	"charter-ops/hangar/internal/models/dtos"

	"github.com/go-chi/chi/v5"
)

// SearchAirports handles GET /api/v1/airports/search?query=&limit=
// Queries shorter than two characters return an empty list.
//
// @Summary      Search airports
// @Tags         Airports
// @Produce      json
// @Param        query  query  string  true   "ICAO, IATA, name or city fragment"
// @Param        limit  query  int     false  "Maximum results (default 10)"
// @Success      200  {object}  dtos.APIResponse
// @Router       /api/v1/airports/search [get]
func (h *Handlers) SearchAirports() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				common.RespondError(w, initTime, nil, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = n
		}

		airports := h.deps.Services.Airports.Search(r.URL.Query().Get("query"), limit)

		resp := make([]dtos.AirportResponse, 0, len(airports))
		for _, a := range airports {
			resp = append(resp, toAirportResponse(a))
		}

		common.RespondSuccess(w, initTime, "Airports fetched successfully", resp)
	}
}

// GetAirport handles GET /api/v1/airports/{icao}
func (h *Handlers) GetAirport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		airport, err := h.deps.Services.Airports.Lookup(chi.URLParam(r, "icao"))
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Airport fetched successfully", toAirportResponse(airport))
	}
}
