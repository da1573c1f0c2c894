package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gormModels "charter-ops/hangar/internal/models/gorm"

	"gorm.io/gorm"
)

// AccountRepository handles accounts table operations
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts a new account. A duplicate email surfaces as gorm.ErrDuplicatedKey.
func (r *AccountRepository) Create(ctx context.Context, account *gormModels.Account) error {
	account.Email = strings.ToLower(strings.TrimSpace(account.Email))
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// FindByEmail finds an account by email (case-insensitive). Returns nil when absent.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*gormModels.Account, error) {
	var account gormModels.Account

	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&account).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}

	return &account, nil
}

// FindByID finds an account by id. Returns nil when absent.
func (r *AccountRepository) FindByID(ctx context.Context, id string) (*gormModels.Account, error) {
	var account gormModels.Account

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}

	return &account, nil
}
