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

// ListPlanes handles GET /api/v1/planes
func (h *Handlers) ListPlanes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		planes, err := h.deps.Services.Planes.List(r.Context(), ownerID(r))
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		resp := make([]dtos.PlaneResponse, 0, len(planes))
		for i := range planes {
			resp = append(resp, toPlaneResponse(&planes[i]))
		}

		common.RespondSuccess(w, initTime, "Planes fetched successfully", resp)
	}
}

// CreatePlane handles POST /api/v1/planes
//
// @Summary      Register a plane
// @Tags         Planes
// @Accept       json
// @Produce      json
// @Param        input  body  dtos.CreatePlaneReq  true  "Plane"
// @Success      201  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Router       /api/v1/planes [post]
func (h *Handlers) CreatePlane() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreatePlaneReq
		if err := decodeBody(r, &req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidRequestBody, http.StatusBadRequest)
			return
		}

		plane, err := h.deps.Services.Planes.Create(r.Context(), ownerID(r), services.PlaneInput{
			TailNumber:   req.TailNumber,
			Model:        req.Model,
			Manufacturer: req.Manufacturer,
			Nickname:     req.Nickname,
			NumEngines:   req.NumEngines,
			NumSeats:     req.NumSeats,
		})
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Plane registered", toPlaneResponse(plane), http.StatusCreated)
	}
}

// GetPlane handles GET /api/v1/planes/{planeID}
func (h *Handlers) GetPlane() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		plane, err := h.deps.Services.Planes.Get(r.Context(), ownerID(r), chi.URLParam(r, "planeID"))
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Plane fetched successfully", toPlaneResponse(plane))
	}
}

// UpdatePlane handles PUT /api/v1/planes/{planeID}. Omitted fields are left unchanged.
func (h *Handlers) UpdatePlane() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.UpdatePlaneReq
		if err := decodeBody(r, &req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidRequestBody, http.StatusBadRequest)
			return
		}

		plane, err := h.deps.Services.Planes.Update(r.Context(), ownerID(r), chi.URLParam(r, "planeID"), services.PlanePatch{
			TailNumber:   req.TailNumber,
			Model:        req.Model,
			Manufacturer: req.Manufacturer,
			Nickname:     req.Nickname,
			NumEngines:   req.NumEngines,
			NumSeats:     req.NumSeats,
		})
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Plane updated", toPlaneResponse(plane))
	}
}

// DeletePlane handles DELETE /api/v1/planes/{planeID}
func (h *Handlers) DeletePlane() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.Planes.Delete(r.Context(), ownerID(r), chi.URLParam(r, "planeID")); err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Plane deleted", nil)
	}
}
