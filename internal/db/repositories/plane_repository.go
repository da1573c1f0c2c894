package repositories

import (
	"context"
	"errors"
	"fmt"

	gormModels "charter-ops/hangar/internal/models/gorm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlaneRepository handles planes table operations. Every query is scoped by owner.
type PlaneRepository struct {
	db *gorm.DB
}

// NewPlaneRepository creates a new plane repository
func NewPlaneRepository(db *gorm.DB) *PlaneRepository {
	return &PlaneRepository{db: db}
}

func (r *PlaneRepository) Create(ctx context.Context, plane *gormModels.Plane) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(plane).Error
}

// FindByID returns the owner's plane, or nil when it does not exist for that owner
func (r *PlaneRepository) FindByID(ctx context.Context, ownerID, id string) (*gormModels.Plane, error) {
	var plane gormModels.Plane

	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&plane).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch plane: %w", err)
	}

	return &plane, nil
}

func (r *PlaneRepository) ListByOwner(ctx context.Context, ownerID string) ([]gormModels.Plane, error) {
	planes := []gormModels.Plane{}

	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC, tail_number ASC").
		Find(&planes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list planes: %w", err)
	}

	return planes, nil
}

// TailNumberTaken reports whether another plane of the owner already uses tailNumber
func (r *PlaneRepository) TailNumberTaken(ctx context.Context, ownerID, tailNumber, excludeID string) (bool, error) {
	var count int64

	q := r.db.WithContext(ctx).Model(&gormModels.Plane{}).
		Where("owner_id = ? AND UPPER(tail_number) = UPPER(?)", ownerID, tailNumber)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check tail number: %w", err)
	}
	return count > 0, nil
}

func (r *PlaneRepository) Save(ctx context.Context, plane *gormModels.Plane) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(plane).Error
}

// DeleteIfUnreferenced deletes the plane unless a trip of any status references it.
// It returns the number of referencing trips; the row is only removed when that is zero.
func (r *PlaneRepository) DeleteIfUnreferenced(ctx context.Context, ownerID, id string) (int64, error) {
	var refs int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&gormModels.Trip{}).
			Where("plane_id = ? AND owner_id = ?", id, ownerID).
			Count(&refs).Error; err != nil {
			return fmt.Errorf("failed to count trips for plane: %w", err)
		}
		if refs > 0 {
			return nil
		}

		if err := tx.Where("id = ? AND owner_id = ?", id, ownerID).
			Delete(&gormModels.Plane{}).Error; err != nil {
			return fmt.Errorf("failed to delete plane: %w", err)
		}
		return nil
	})

	return refs, err
}

func (r *PlaneRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gormModels.Plane{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}
