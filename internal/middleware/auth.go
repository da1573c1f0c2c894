package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"charter-ops/hangar/internal/auth"
	"charter-ops/hangar/internal/common"
	"charter-ops/hangar/internal/constants"
	"charter-ops/hangar/internal/logging"
)

// TokenValidator checks a bearer token and returns its claims
type TokenValidator interface {
	Validate(ctx context.Context, token string) (*common.AccessClaims, error)
}

// AuthMiddleware requires a valid Bearer access token and stores its claims in the request context
func AuthMiddleware(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initTime := time.Now()

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				common.RespondError(w, initTime, nil, constants.MsgUnauthorized, http.StatusUnauthorized)
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			access, err := tokens.Validate(r.Context(), token)
			if err != nil {
				if !errors.Is(err, common.ErrTokenInvalid) && !errors.Is(err, common.ErrTokenRevoked) {
					logging.Error("Token validation failed", "error", err.Error())
					common.RespondError(w, initTime, nil, constants.MsgInternalError, http.StatusInternalServerError)
					return
				}
				common.RespondError(w, initTime, nil, constants.MsgUnauthorized, http.StatusUnauthorized)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), auth.NewJWTClaims(access))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
