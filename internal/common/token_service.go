package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token revoked")
)

// IssuedToken is a signed access token and its identifying claims
type IssuedToken struct {
	Token     string    `json:"token"`
	TokenID   string    `json:"-"`
	AccountID string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AccessClaims are the claims carried by an account access token
type AccessClaims struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and validates account access tokens
type TokenService struct {
	secretKey []byte
	ttl       time.Duration
	revoked   RevokedTokenStore
	now       func() time.Time
}

// NewTokenService creates a new token service
func NewTokenService(secretKey []byte, ttl time.Duration, revoked RevokedTokenStore) *TokenService {
	return &TokenService{
		secretKey: secretKey,
		ttl:       ttl,
		revoked:   revoked,
		now:       time.Now,
	}
}

// Issue signs a new access token for the account
func (s *TokenService) Issue(accountID, email string) (*IssuedToken, error) {
	tokenID := uuid.New().String()
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := AccessClaims{
		AccountID: accountID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &IssuedToken{
		Token:     tokenString,
		TokenID:   tokenID,
		AccountID: accountID,
		ExpiresAt: expiresAt,
	}, nil
}

// Validate parses the token, checks signature and expiry, and rejects revoked tokens
func (s *TokenService) Validate(ctx context.Context, tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if !token.Valid || claims.AccountID == "" || claims.ID == "" {
		return nil, ErrTokenInvalid
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}

// Revoke marks a token id unusable until its expiry
func (s *TokenService) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	return s.revoked.Revoke(ctx, tokenID, ttl)
}
