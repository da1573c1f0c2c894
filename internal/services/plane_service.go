package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"charter-ops/hangar/internal/constants"
	"charter-ops/hangar/internal/db/repositories"
	"charter-ops/hangar/internal/logging"
	gormModels "charter-ops/hangar/internal/models/gorm"

	"gorm.io/gorm"
)

const (
	DefaultNumEngines = 2
	DefaultNumSeats   = 20
)

// PlaneInput holds the fields of a new plane. Nil counts take the defaults.
type PlaneInput struct {
	TailNumber   string
	Model        string
	Manufacturer string
	Nickname     *string
	NumEngines   *int
	NumSeats     *int
}

// PlanePatch lists the fields to change on a plane; nil fields are left untouched.
// An empty Nickname clears it.
type PlanePatch struct {
	TailNumber   *string
	Model        *string
	Manufacturer *string
	Nickname     *string
	NumEngines   *int
	NumSeats     *int
}

// PlaneService is owner-scoped plane CRUD
type PlaneService struct {
	planes *repositories.PlaneRepository
}

func NewPlaneService(planes *repositories.PlaneRepository) *PlaneService {
	return &PlaneService{planes: planes}
}

func (s *PlaneService) Create(ctx context.Context, ownerID string, in PlaneInput) (*gormModels.Plane, error) {
	plane := &gormModels.Plane{
		OwnerID:      ownerID,
		TailNumber:   normalizeTailNumber(in.TailNumber),
		Model:        strings.TrimSpace(in.Model),
		Manufacturer: strings.TrimSpace(in.Manufacturer),
		Nickname:     trimmedOrNil(in.Nickname),
		NumEngines:   DefaultNumEngines,
		NumSeats:     DefaultNumSeats,
	}
	if in.NumEngines != nil {
		plane.NumEngines = *in.NumEngines
	}
	if in.NumSeats != nil {
		plane.NumSeats = *in.NumSeats
	}

	if err := validatePlane(plane); err != nil {
		return nil, err
	}
	if err := s.ensureTailNumberFree(ctx, ownerID, plane.TailNumber, ""); err != nil {
		return nil, err
	}

	if err := s.planes.Create(ctx, plane); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newError(ErrValidation, constants.MsgTailNumberTaken)
		}
		return nil, fmt.Errorf("failed to create plane: %w", err)
	}

	logging.Info("Plane registered", "plane_id", plane.ID, "owner_id", ownerID, "tail_number", plane.TailNumber)
	return plane, nil
}

func (s *PlaneService) Get(ctx context.Context, ownerID, planeID string) (*gormModels.Plane, error) {
	plane, err := s.planes.FindByID(ctx, ownerID, planeID)
	if err != nil {
		return nil, err
	}
	if plane == nil {
		return nil, newError(ErrNotFound, constants.MsgAircraftNotFound)
	}
	return plane, nil
}

func (s *PlaneService) List(ctx context.Context, ownerID string) ([]gormModels.Plane, error) {
	return s.planes.ListByOwner(ctx, ownerID)
}

func (s *PlaneService) Update(ctx context.Context, ownerID, planeID string, patch PlanePatch) (*gormModels.Plane, error) {
	current, err := s.Get(ctx, ownerID, planeID)
	if err != nil {
		return nil, err
	}

	updated := *current
	if patch.TailNumber != nil {
		updated.TailNumber = normalizeTailNumber(*patch.TailNumber)
	}
	if patch.Model != nil {
		updated.Model = strings.TrimSpace(*patch.Model)
	}
	if patch.Manufacturer != nil {
		updated.Manufacturer = strings.TrimSpace(*patch.Manufacturer)
	}
	if patch.Nickname != nil {
		updated.Nickname = trimmedOrNil(patch.Nickname)
	}
	if patch.NumEngines != nil {
		updated.NumEngines = *patch.NumEngines
	}
	if patch.NumSeats != nil {
		updated.NumSeats = *patch.NumSeats
	}

	if err := validatePlane(&updated); err != nil {
		return nil, err
	}
	if updated.TailNumber != current.TailNumber {
		if err := s.ensureTailNumberFree(ctx, ownerID, updated.TailNumber, planeID); err != nil {
			return nil, err
		}
	}

	if err := s.planes.Save(ctx, &updated); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newError(ErrValidation, constants.MsgTailNumberTaken)
		}
		return nil, fmt.Errorf("failed to update plane: %w", err)
	}

	return &updated, nil
}

// Delete removes the plane when no trip of any status references it
func (s *PlaneService) Delete(ctx context.Context, ownerID, planeID string) error {
	if _, err := s.Get(ctx, ownerID, planeID); err != nil {
		return err
	}

	refs, err := s.planes.DeleteIfUnreferenced(ctx, ownerID, planeID)
	if err != nil {
		return err
	}
	if refs > 0 {
		return newError(ErrReferentialConflict, constants.MsgPlaneInUse)
	}

	logging.Info("Plane deleted", "plane_id", planeID, "owner_id", ownerID)
	return nil
}

func (s *PlaneService) ensureTailNumberFree(ctx context.Context, ownerID, tailNumber, excludeID string) error {
	taken, err := s.planes.TailNumberTaken(ctx, ownerID, tailNumber, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return newError(ErrValidation, constants.MsgTailNumberTaken)
	}
	return nil
}

func validatePlane(p *gormModels.Plane) error {
	switch {
	case p.TailNumber == "":
		return newError(ErrValidation, "tail_number is required")
	case p.Model == "":
		return newError(ErrValidation, "model is required")
	case p.Manufacturer == "":
		return newError(ErrValidation, "manufacturer is required")
	case p.NumEngines < 1:
		return newError(ErrValidation, "num_engines must be at least 1")
	case p.NumSeats < 1:
		return newError(ErrValidation, "num_seats must be at least 1")
	}
	return nil
}

func normalizeTailNumber(tail string) string {
	return strings.ToUpper(strings.TrimSpace(tail))
}

// trimmedOrNil trims an optional string; blank values become nil
func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
