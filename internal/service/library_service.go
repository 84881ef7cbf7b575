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

type LibraryService struct {
	repo repository.LibraryRepositoryI
}

func NewLibraryService(libraryRepo repository.LibraryRepositoryI) *LibraryService {
	if libraryRepo == nil {
		log.Fatal("provided nil libraryRepo")
	}
	return &LibraryService{
		repo: libraryRepo,
	}
}

func (ls *LibraryService) ListEntries(ctx context.Context, uid uuid.UUID, category string) ([]entity.LibraryEntry, error) {
	entries, err := ls.repo.GetVisible(ctx, uid, category)
	if err != nil {
		return nil, errors.New("library repository error: " + err.Error())
	}
	return entries, nil
}

func (ls *LibraryService) CreateEntry(ctx context.Context, uid uuid.UUID, req *CreateEntryRequest) (*entity.LibraryEntry, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	owner := uid
	entry, err := ls.repo.Create(ctx, &entity.LibraryEntry{
		UserID:           &owner,
		Name:             req.Name,
		Category:         req.Category,
		FormCue:          req.FormCue,
		Sets:             req.Sets,
		Reps:             req.Reps,
		Duration:         req.Duration,
		RestSec:          req.RestSec,
		IntensityPercent: req.IntensityPercent,
		Alternatives:     req.Alternatives,
		Tags:             req.Tags,
		Source:           req.Source,
		SourceURL:        req.SourceURL,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("library repository error: " + err.Error())
	}
	return entry, nil
}

// UpdateEntry applies a read-modify-write: only the fields present in the
// request change. Global rows (no owner) are not editable through this path.
func (ls *LibraryService) UpdateEntry(ctx context.Context, uid, id uuid.UUID, req *UpdateEntryRequest) (*entity.LibraryEntry, error) {
	entry, err := ls.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("library repository error: " + err.Error())
	}
	if entry.UserID == nil || *entry.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	if req.Name != nil {
		entry.Name = *req.Name
	}
	if req.Category != nil {
		entry.Category = *req.Category
	}
	if req.FormCue != nil {
		entry.FormCue = *req.FormCue
	}
	if req.Sets != nil {
		entry.Sets = *req.Sets
	}
	if req.Reps != nil {
		entry.Reps = *req.Reps
	}
	if req.Duration != nil {
		entry.Duration = *req.Duration
	}
	if req.RestSec != nil {
		entry.RestSec = *req.RestSec
	}
	if req.IntensityPercent != nil {
		entry.IntensityPercent = *req.IntensityPercent
	}
	if req.Alternatives != nil {
		entry.Alternatives = *req.Alternatives
	}
	if req.Tags != nil {
		entry.Tags = *req.Tags
	}
	if req.Source != nil {
		entry.Source = *req.Source
	}
	if req.SourceURL != nil {
		entry.SourceURL = *req.SourceURL
	}
	// The merged entry has to pass the same rules as a freshly created one
	merged := CreateEntryRequest{
		Name:             entry.Name,
		Category:         entry.Category,
		FormCue:          entry.FormCue,
		Sets:             entry.Sets,
		Reps:             entry.Reps,
		Duration:         entry.Duration,
		RestSec:          entry.RestSec,
		IntensityPercent: entry.IntensityPercent,
		Alternatives:     entry.Alternatives,
		Tags:             entry.Tags,
		Source:           entry.Source,
		SourceURL:        entry.SourceURL,
	}
	if err = validateStruct(merged); err != nil {
		return nil, err
	}
	if err = ls.repo.Update(ctx, uid, entry); err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("library repository error: " + err.Error())
	}
	return entry, nil
}

func (ls *LibraryService) DeleteEntry(ctx context.Context, uid, id uuid.UUID) error {
	entry, err := ls.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return err
		}
		return errors.New("library repository error: " + err.Error())
	}
	if entry.UserID == nil || *entry.UserID != uid {
		return errorvalues.ErrWrongOwner
	}
	if err = ls.repo.SoftDelete(ctx, uid, id); err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return err
		}
		return errors.New("library repository error: " + err.Error())
	}
	return nil
}
