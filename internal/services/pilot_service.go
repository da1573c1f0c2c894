package services

import (
	"context"
	"fmt"
	"strings"

	"charter-ops/hangar/internal/constants"
	"charter-ops/hangar/internal/db/repositories"
	"charter-ops/hangar/internal/logging"
	gormModels "charter-ops/hangar/internal/models/gorm"
)

type PilotInput struct {
	Name          string
	LicenseNumber string
	Rating        *string
	TotalHours    *float64
	ContactNumber *string
	Email         *string
}

// PilotPatch lists the fields to change on a pilot; nil fields are left untouched.
// Empty optional strings clear the stored value.
type PilotPatch struct {
	Name          *string
	LicenseNumber *string
	Rating        *string
	TotalHours    *float64
	ContactNumber *string
	Email         *string
}

// PilotService is owner-scoped pilot CRUD
type PilotService struct {
	pilots *repositories.PilotRepository
}

func NewPilotService(pilots *repositories.PilotRepository) *PilotService {
	return &PilotService{pilots: pilots}
}

func (s *PilotService) Create(ctx context.Context, ownerID string, in PilotInput) (*gormModels.Pilot, error) {
	pilot := &gormModels.Pilot{
		OwnerID:       ownerID,
		Name:          strings.TrimSpace(in.Name),
		LicenseNumber: strings.TrimSpace(in.LicenseNumber),
		Rating:        trimmedOrNil(in.Rating),
		TotalHours:    in.TotalHours,
		ContactNumber: trimmedOrNil(in.ContactNumber),
		Email:         trimmedOrNil(in.Email),
	}

	if err := validatePilot(pilot); err != nil {
		return nil, err
	}

	if err := s.pilots.Create(ctx, pilot); err != nil {
		return nil, fmt.Errorf("failed to create pilot: %w", err)
	}

	logging.Info("Pilot registered", "pilot_id", pilot.ID, "owner_id", ownerID)
	return pilot, nil
}

func (s *PilotService) Get(ctx context.Context, ownerID, pilotID string) (*gormModels.Pilot, error) {
	pilot, err := s.pilots.FindByID(ctx, ownerID, pilotID)
	if err != nil {
		return nil, err
	}
	if pilot == nil {
		return nil, newError(ErrNotFound, constants.MsgPilotNotFound)
	}
	return pilot, nil
}

func (s *PilotService) List(ctx context.Context, ownerID string) ([]gormModels.Pilot, error) {
	return s.pilots.ListByOwner(ctx, ownerID)
}

func (s *PilotService) Update(ctx context.Context, ownerID, pilotID string, patch PilotPatch) (*gormModels.Pilot, error) {
	current, err := s.Get(ctx, ownerID, pilotID)
	if err != nil {
		return nil, err
	}

	updated := *current
	if patch.Name != nil {
		updated.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.LicenseNumber != nil {
		updated.LicenseNumber = strings.TrimSpace(*patch.LicenseNumber)
	}
	if patch.Rating != nil {
		updated.Rating = trimmedOrNil(patch.Rating)
	}
	if patch.TotalHours != nil {
		updated.TotalHours = patch.TotalHours
	}
	if patch.ContactNumber != nil {
		updated.ContactNumber = trimmedOrNil(patch.ContactNumber)
	}
	if patch.Email != nil {
		updated.Email = trimmedOrNil(patch.Email)
	}

	if err := validatePilot(&updated); err != nil {
		return nil, err
	}

	if err := s.pilots.Save(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update pilot: %w", err)
	}

	return &updated, nil
}

// Delete removes the pilot when no trip of any status references it
func (s *PilotService) Delete(ctx context.Context, ownerID, pilotID string) error {
	if _, err := s.Get(ctx, ownerID, pilotID); err != nil {
		return err
	}

	refs, err := s.pilots.DeleteIfUnreferenced(ctx, ownerID, pilotID)
	if err != nil {
		return err
	}
	if refs > 0 {
		return newError(ErrReferentialConflict, constants.MsgPilotInUse)
	}

	logging.Info("Pilot deleted", "pilot_id", pilotID, "owner_id", ownerID)
	return nil
}

func validatePilot(p *gormModels.Pilot) error {
	switch {
	case p.Name == "":
		return newError(ErrValidation, "name is required")
	case p.LicenseNumber == "":
		return newError(ErrValidation, "license_number is required")
	case p.TotalHours != nil && *p.TotalHours < 0:
		return newError(ErrValidation, "total_hours cannot be negative")
	}
	return nil
}
