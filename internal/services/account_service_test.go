package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"charter-ops/hangar/internal/common"
	"charter-ops/hangar/internal/db/dbtest"
	"charter-ops/hangar/internal/db/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAccountService(t *testing.T) (*AccountService, *common.TokenService) {
	t.Helper()
	database := dbtest.Open(t)
	store := common.NewMemoryTokenStore(common.NewCacheService(time.Hour, time.Minute))
	tokens := common.NewTokenService([]byte("test-secret"), time.Hour, store)

	svc := NewAccountService(repositories.NewAccountRepository(database.ORM), tokens)
	svc.bcryptCost = bcrypt.MinCost
	return svc, tokens
}

func TestAccountService_RegisterAndLogin(t *testing.T) {
	svc, tokens := newAccountService(t)
	ctx := context.Background()

	session, err := svc.Register(ctx, "Acme Charter", "Ops@Acme.test", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "ops@acme.test", session.Account.Email)
	assert.NotEqual(t, "correct-horse", session.Account.PasswordHash)

	claims, err := tokens.Validate(ctx, session.Token.Token)
	require.NoError(t, err)
	assert.Equal(t, session.Account.ID, claims.AccountID)

	login, err := svc.Login(ctx, "OPS@acme.test", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, session.Account.ID, login.Account.ID)
	assert.NotEqual(t, session.Token.TokenID, login.Token.TokenID)
}

func TestAccountService_RegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Acme Charter", "ops@acme.test", "correct-horse")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Acme Again", "OPS@acme.test", "another-pass")
	assert.True(t, errors.Is(err, ErrAccountExists))
}

func TestAccountService_RegisterValidation(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "ops@acme.test", "correct-horse")
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = svc.Register(ctx, "Acme", "ops@acme.test", "short")
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestAccountService_LoginFailuresLookAlike(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Acme Charter", "ops@acme.test", "correct-horse")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "ops@acme.test", "battery-staple")
	_, unknownEmail := svc.Login(ctx, "nobody@acme.test", "correct-horse")

	assert.True(t, errors.Is(wrongPassword, ErrInvalidCredentials))
	assert.True(t, errors.Is(unknownEmail, ErrInvalidCredentials))
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAccountService_LogoutRevokesToken(t *testing.T) {
	svc, tokens := newAccountService(t)
	ctx := context.Background()

	session, err := svc.Register(ctx, "Acme Charter", "ops@acme.test", "correct-horse")
	require.NoError(t, err)

	claims, err := tokens.Validate(ctx, session.Token.Token)
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, claims.AccountID, claims.ID, claims.ExpiresAt.Time))

	_, err = tokens.Validate(ctx, session.Token.Token)
	assert.True(t, errors.Is(err, common.ErrTokenRevoked))

	account, err := svc.Get(ctx, session.Account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Charter", account.CompanyName)

	_, err = svc.Get(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}
