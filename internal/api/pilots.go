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

func (h *Handlers) ListPilots() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		pilots, err := h.deps.Services.Pilots.List(r.Context(), ownerID(r))
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		resp := make([]dtos.PilotResponse, 0, len(pilots))
		for i := range pilots {
			resp = append(resp, toPilotResponse(&pilots[i]))
		}

		common.RespondSuccess(w, initTime, "Pilots fetched successfully", resp)
	}
}

func (h *Handlers) CreatePilot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreatePilotReq
		if err := decodeBody(r, &req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidRequestBody, http.StatusBadRequest)
			return
		}

		pilot, err := h.deps.Services.Pilots.Create(r.Context(), ownerID(r), services.PilotInput{
			Name:          req.Name,
			LicenseNumber: req.LicenseNumber,
			Rating:        req.Rating,
			TotalHours:    req.TotalHours,
			ContactNumber: req.ContactNumber,
			Email:         req.Email,
		})
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Pilot registered", toPilotResponse(pilot), http.StatusCreated)
	}
}

func (h *Handlers) GetPilot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		pilot, err := h.deps.Services.Pilots.Get(r.Context(), ownerID(r), chi.URLParam(r, "pilotID"))
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Pilot fetched successfully", toPilotResponse(pilot))
	}
}

func (h *Handlers) UpdatePilot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.UpdatePilotReq
		if err := decodeBody(r, &req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidRequestBody, http.StatusBadRequest)
			return
		}

		pilot, err := h.deps.Services.Pilots.Update(r.Context(), ownerID(r), chi.URLParam(r, "pilotID"), services.PilotPatch{
			Name:          req.Name,
			LicenseNumber: req.LicenseNumber,
			Rating:        req.Rating,
			TotalHours:    req.TotalHours,
			ContactNumber: req.ContactNumber,
			Email:         req.Email,
		})
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Pilot updated", toPilotResponse(pilot))
	}
}

func (h *Handlers) DeletePilot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.Pilots.Delete(r.Context(), ownerID(r), chi.URLParam(r, "pilotID")); err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Pilot deleted", nil)
	}
}
