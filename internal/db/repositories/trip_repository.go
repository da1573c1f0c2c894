package repositories

import (
	"context"
	"errors"
	"fmt"

	"charter-ops/hangar/internal/constants"
	gormModels "charter-ops/hangar/internal/models/gorm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TripRepository handles trips table operations. Every query is scoped by owner.
type TripRepository struct {
	db *gorm.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) Create(ctx context.Context, trip *gormModels.Trip) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(trip).Error
}

// FindByID returns the owner's trip, or nil when it does not exist for that owner
func (r *TripRepository) FindByID(ctx context.Context, ownerID, id string) (*gormModels.Trip, error) {
	var trip gormModels.Trip

	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch trip: %w", err)
	}

	return &trip, nil
}

// List returns the owner's trips ordered by departure time, optionally filtered by status
func (r *TripRepository) List(ctx context.Context, ownerID string, status *constants.TripStatus) ([]gormModels.Trip, error) {
	trips := []gormModels.Trip{}

	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}

	if err := q.Order("departure_time ASC, id ASC").Find(&trips).Error; err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	return trips, nil
}

func (r *TripRepository) Save(ctx context.Context, trip *gormModels.Trip) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(trip).Error
}

// DeleteScheduled removes the trip only while it is still scheduled.
// It reports whether a row was deleted.
func (r *TripRepository) DeleteScheduled(ctx context.Context, ownerID, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ? AND status = ?", id, ownerID, string(constants.TripScheduled)).
		Delete(&gormModels.Trip{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete trip: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
