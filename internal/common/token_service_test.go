package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService() *TokenService {
	store := NewMemoryTokenStore(NewCacheService(time.Hour, time.Minute))
	return NewTokenService([]byte("test-secret"), time.Hour, store)
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := newTestTokenService()
	ctx := context.Background()

	issued, err := svc.Issue("account-1", "ops@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.NotEmpty(t, issued.TokenID)

	claims, err := svc.Validate(ctx, issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "account-1", claims.AccountID)
	assert.Equal(t, "ops@example.com", claims.Email)
	assert.Equal(t, issued.TokenID, claims.ID)
}

func TestTokenService_RejectsOtherSecret(t *testing.T) {
	svc := newTestTokenService()
	issued, err := svc.Issue("account-1", "ops@example.com")
	require.NoError(t, err)

	other := NewTokenService([]byte("other-secret"), time.Hour, NewMemoryTokenStore(NewCacheService(time.Hour, time.Minute)))
	_, err = other.Validate(context.Background(), issued.Token)
	assert.True(t, errors.Is(err, ErrTokenInvalid))
}

func TestTokenService_Expired(t *testing.T) {
	svc := newTestTokenService()
	issued, err := svc.Issue("account-1", "ops@example.com")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.Validate(context.Background(), issued.Token)
	assert.True(t, errors.Is(err, ErrTokenInvalid))
}

func TestTokenService_Revoke(t *testing.T) {
	svc := newTestTokenService()
	ctx := context.Background()

	issued, err := svc.Issue("account-1", "ops@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, issued.TokenID, issued.ExpiresAt))

	_, err = svc.Validate(ctx, issued.Token)
	assert.True(t, errors.Is(err, ErrTokenRevoked))
}

func TestTokenService_Garbage(t *testing.T) {
	svc := newTestTokenService()
	_, err := svc.Validate(context.Background(), "not.a.token")
	assert.True(t, errors.Is(err, ErrTokenInvalid))
}
