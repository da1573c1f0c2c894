package auth

import (
	"context"
)

type contextKey string

var userClaimsKey contextKey = "user_claims"
var requestMetaKey contextKey = "request_meta"

// RequestMeta is per-request bookkeeping shared between the outer and inner middleware.
// Inner layers fill AccountID so the outer access log can report it.
type RequestMeta struct {
	RequestID string
	AccountID string
}

func SetUserClaims(ctx context.Context, claims UserClaims) context.Context {
	if meta := GetRequestMeta(ctx); meta != nil && claims != nil {
		meta.AccountID = claims.AccountID()
	}
	return context.WithValue(ctx, userClaimsKey, claims)
}

func GetUserClaims(ctx context.Context) UserClaims {
	val := ctx.Value(userClaimsKey)
	if claims, ok := val.(UserClaims); ok {
		return claims
	}
	return nil
}

func SetRequestMeta(ctx context.Context, meta *RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey, meta)
}

func GetRequestMeta(ctx context.Context) *RequestMeta {
	if meta, ok := ctx.Value(requestMetaKey).(*RequestMeta); ok {
		return meta
	}
	return nil
}

// GetRequestID returns the request correlation id, or "" outside a request
func GetRequestID(ctx context.Context) string {
	if meta := GetRequestMeta(ctx); meta != nil {
		return meta.RequestID
	}
	return ""
}
