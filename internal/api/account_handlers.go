package api

import (
	"net/http"
	"time"

	"charter-ops/hangar/internal/auth"
	"charter-ops/hangar/internal/common"
	"charter-ops/hangar/internal/constants"
	"charter-ops/hangar/internal/models/dtos"
)

// Register handles POST /api/v1/auth/register
//
// @Summary      Register a company account
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        input  body  dtos.RegisterAccountReq  true  "Account details"
// @Success      201  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Failure      409  {object}  dtos.APIResponse
// @Router       /api/v1/auth/register [post]
func (h *Handlers) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.RegisterAccountReq
		if err := decodeBody(r, &req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidRequestBody, http.StatusBadRequest)
			return
		}

		session, err := h.deps.Services.Accounts.Register(r.Context(), req.CompanyName, req.Email, req.Password)
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Account registered", toAuthResponse(session), http.StatusCreated)
	}
}

// Login handles POST /api/v1/auth/login
//
// @Summary      Sign in and receive an access token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        input  body  dtos.LoginReq  true  "Credentials"
// @Success      200  {object}  dtos.APIResponse
// @Failure      401  {object}  dtos.APIResponse
// @Router       /api/v1/auth/login [post]
func (h *Handlers) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LoginReq
		if err := decodeBody(r, &req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidRequestBody, http.StatusBadRequest)
			return
		}

		session, err := h.deps.Services.Accounts.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Signed in", toAuthResponse(session))
	}
}

// Logout handles POST /api/v1/auth/logout
func (h *Handlers) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, constants.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		if err := h.deps.Services.Accounts.Logout(r.Context(), claims.AccountID(), claims.TokenID(), claims.ExpiresAt()); err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Signed out", nil)
	}
}

// GetAccount handles GET /api/v1/account
func (h *Handlers) GetAccount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		account, err := h.deps.Services.Accounts.Get(r.Context(), ownerID(r))
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Account fetched successfully", toAccountResponse(account))
	}
}

// DashboardSummary handles GET /api/v1/dashboard/summary
func (h *Handlers) DashboardSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		summary, err := h.deps.Services.Dashboard.Summary(r.Context(), ownerID(r))
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Dashboard summary fetched successfully", summary)
	}
}
