package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"charter-ops/hangar/internal/common"
	"charter-ops/hangar/internal/constants"
	"charter-ops/hangar/internal/db/repositories"
	"charter-ops/hangar/internal/logging"
	gormModels "charter-ops/hangar/internal/models/gorm"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Session is the result of a successful register or login
type Session struct {
	Account *gormModels.Account
	Token   *common.IssuedToken
}

// AccountService registers company accounts and manages their access tokens
type AccountService struct {
	accounts   *repositories.AccountRepository
	tokens     *common.TokenService
	bcryptCost int
}

func NewAccountService(accounts *repositories.AccountRepository, tokens *common.TokenService) *AccountService {
	return &AccountService{
		accounts:   accounts,
		tokens:     tokens,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// Register creates the account and signs it in
func (s *AccountService) Register(ctx context.Context, companyName, email, password string) (*Session, error) {
	companyName = strings.TrimSpace(companyName)
	email = strings.ToLower(strings.TrimSpace(email))

	switch {
	case companyName == "":
		return nil, newError(ErrValidation, "company_name is required")
	case email == "":
		return nil, newError(ErrValidation, "email is required")
	case len(password) < 8:
		return nil, newError(ErrValidation, "password must be at least 8 characters")
	}

	existing, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, newError(ErrAccountExists, constants.MsgAccountExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &gormModels.Account{
		CompanyName:  companyName,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newError(ErrAccountExists, constants.MsgAccountExists)
		}
		return nil, err
	}

	logging.Info("Account registered", "account_id", account.ID, "company", companyName)
	return s.issue(account)
}

// Login checks the password and issues a fresh token.
// Unknown emails and wrong passwords fail the same way.
func (s *AccountService) Login(ctx context.Context, email, password string) (*Session, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, newError(ErrInvalidCredentials, constants.MsgInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		logging.Warn("Failed login attempt", "account_id", account.ID)
		return nil, newError(ErrInvalidCredentials, constants.MsgInvalidCredentials)
	}

	return s.issue(account)
}

// Logout revokes the token until it would have expired anyway
func (s *AccountService) Logout(ctx context.Context, accountID, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return nil
	}
	if err := s.tokens.Revoke(ctx, tokenID, expiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	logging.Info("Account signed out", "account_id", accountID)
	return nil
}

func (s *AccountService) Get(ctx context.Context, accountID string) (*gormModels.Account, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, newError(ErrNotFound, "account not found")
	}
	return account, nil
}

func (s *AccountService) issue(account *gormModels.Account) (*Session, error) {
	token, err := s.tokens.Issue(account.ID, account.Email)
	if err != nil {
		return nil, err
	}
	return &Session{Account: account, Token: token}, nil
}
