package repositories

import (
	"context"
	"errors"
	"fmt"

	gormModels "charter-ops/hangar/internal/models/gorm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PilotRepository handles pilots table operations. Every query is scoped by owner.
type PilotRepository struct {
	db *gorm.DB
}

// NewPilotRepository creates a new pilot repository
func NewPilotRepository(db *gorm.DB) *PilotRepository {
	return &PilotRepository{db: db}
}

func (r *PilotRepository) Create(ctx context.Context, pilot *gormModels.Pilot) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(pilot).Error
}

// FindByID returns the owner's pilot, or nil when it does not exist for that owner
func (r *PilotRepository) FindByID(ctx context.Context, ownerID, id string) (*gormModels.Pilot, error) {
	var pilot gormModels.Pilot

	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&pilot).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch pilot: %w", err)
	}

	return &pilot, nil
}

func (r *PilotRepository) ListByOwner(ctx context.Context, ownerID string) ([]gormModels.Pilot, error) {
	pilots := []gormModels.Pilot{}

	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC, name ASC").
		Find(&pilots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pilots: %w", err)
	}

	return pilots, nil
}

func (r *PilotRepository) Save(ctx context.Context, pilot *gormModels.Pilot) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(pilot).Error
}

// DeleteIfUnreferenced deletes the pilot unless a trip of any status references it.
// It returns the number of referencing trips; the row is only removed when that is zero.
func (r *PilotRepository) DeleteIfUnreferenced(ctx context.Context, ownerID, id string) (int64, error) {
	var refs int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&gormModels.Trip{}).
			Where("pilot_id = ? AND owner_id = ?", id, ownerID).
			Count(&refs).Error; err != nil {
			return fmt.Errorf("failed to count trips for pilot: %w", err)
		}
		if refs > 0 {
			return nil
		}

		if err := tx.Where("id = ? AND owner_id = ?", id, ownerID).
			Delete(&gormModels.Pilot{}).Error; err != nil {
			return fmt.Errorf("failed to delete pilot: %w", err)
		}
		return nil
	})

	return refs, err
}

func (r *PilotRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gormModels.Pilot{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}
