package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/granger49/Protocol/internal/error_values"
	"github.com/granger49/Protocol/internal/repository"
	"github.com/granger49/Protocol/pkg/entity"
)

type PreferencesService struct {
	repo repository.PreferencesRepositoryI
}

func NewPreferencesService(preferencesRepo repository.PreferencesRepositoryI) *PreferencesService {
	if preferencesRepo == nil {
		log.Fatal("provided nil preferencesRepo")
	}
	return &PreferencesService{
		repo: preferencesRepo,
	}
}

// GetPreferences never fails on absence: a user who has not saved anything
// gets empty defaults.
func (ps *PreferencesService) GetPreferences(ctx context.Context, uid uuid.UUID) (*entity.Preferences, error) {
	prefs, err := ps.repo.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPreferencesNotFound) {
			return &entity.Preferences{
				UserID:             uid,
				BasketballDays:     make([]string, 0),
				EquipmentAvailable: make([]string, 0),
			}, nil
		}
		return nil, errors.New("preferences repository error: " + err.Error())
	}
	return prefs, nil
}

func (ps *PreferencesService) UpdatePreferences(ctx context.Context, uid uuid.UUID, req *UpdatePreferencesRequest) (*entity.Preferences, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	prefs, err := ps.repo.Upsert(ctx, &entity.Preferences{
		UserID:             uid,
		BasketballDays:     req.BasketballDays,
		EquipmentAvailable: req.EquipmentAvailable,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("preferences repository error: " + err.Error())
	}
	return prefs, nil
}
