package auth

import (
	"time"

	"charter-ops/hangar/internal/common"
)

// UserClaims identifies the account behind an authenticated request.
type UserClaims interface {
	AccountID() string
	Email() string
	TokenID() string
	ExpiresAt() time.Time
	Source() string
}

// JWTClaims adapts validated access-token claims to UserClaims
type JWTClaims struct {
	Access *common.AccessClaims
}

func NewJWTClaims(access *common.AccessClaims) *JWTClaims {
	return &JWTClaims{Access: access}
}

func (c *JWTClaims) AccountID() string { return c.Access.AccountID }
func (c *JWTClaims) Email() string     { return c.Access.Email }
func (c *JWTClaims) TokenID() string   { return c.Access.ID }
func (c *JWTClaims) Source() string    { return "JWT" }

func (c *JWTClaims) ExpiresAt() time.Time {
	if c.Access.ExpiresAt == nil {
		return time.Time{}
	}
	return c.Access.ExpiresAt.Time
}
