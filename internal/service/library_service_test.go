package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/granger49/Protocol/internal/error_values"
	"github.com/granger49/Protocol/internal/service"
	"github.com/granger49/Protocol/pkg/entity"
)

var entryID = uuid.New()

func testEntry() entity.LibraryEntry {
	owner := userID
	return entity.LibraryEntry{
		ID:       entryID,
		UserID:   &owner,
		Name:     "Back Squat",
		Category: "strength",
		FormCue:  "brace before the descent",
		Sets:     5,
		Reps:     "5",
		RestSec:  180,
		Tags:     []string{"barbell"},
		IsActive: true,
	}
}

type libraryRepoMock struct {
	state       mockState
	lastUpdated *entity.LibraryEntry
}

func (lrmock *libraryRepoMock) GetVisible(ctx context.Context, uid uuid.UUID, category string) ([]entity.LibraryEntry, error) {
	switch lrmock.state {
	case stateDBError:
		return nil, errors.New("db error")
	default:
		global := testEntry()
		global.ID = uuid.New()
		global.UserID = nil
		global.Name = "Plank"
		global.Category = "stability"
		if category != "" && category != global.Category {
			return []entity.LibraryEntry{testEntry()}, nil
		}
		return []entity.LibraryEntry{global, testEntry()}, nil
	}
}

func (lrmock *libraryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.LibraryEntry, error) {
	switch lrmock.state {
	case stateNotFound:
		return nil, errorvalues.ErrEntryNotFound
	case stateDBError:
		return nil, errors.New("db error")
	case stateWrongOwner:
		other := uuid.New()
		entry := testEntry()
		entry.UserID = &other
		return &entry, nil
	case stateGlobalEntry:
		entry := testEntry()
		entry.UserID = nil
		return &entry, nil
	default:
		entry := testEntry()
		return &entry, nil
	}
}

func (lrmock *libraryRepoMock) Create(ctx context.Context, entry *entity.LibraryEntry) (*entity.LibraryEntry, error) {
	switch lrmock.state {
	case stateOwnerNotFound:
		return nil, errorvalues.ErrOwnerNotFound
	case stateDBError:
		return nil, errors.New("db error")
	default:
		created := *entry
		created.ID = entryID
		created.IsActive = true
		return &created, nil
	}
}

func (lrmock *libraryRepoMock) Update(ctx context.Context, uid uuid.UUID, entry *entity.LibraryEntry) error {
	switch lrmock.state {
	case stateDBError:
		return errors.New("db error")
	default:
		lrmock.lastUpdated = entry
		return nil
	}
}

func (lrmock *libraryRepoMock) SoftDelete(ctx context.Context, uid, id uuid.UUID) error {
	switch lrmock.state {
	case stateDBError:
		return errors.New("db error")
	default:
		return nil
	}
}

func TestListEntries(t *testing.T) {
	mock := &libraryRepoMock{state: stateSuccess}
	s := service.NewLibraryService(mock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		entries, err := s.ListEntries(ctx, userID, "")
		assert.NoError(t, err)
		assert.Equal(t, 2, len(entries))
		assert.Nil(t, entries[0].UserID)
		assert.Equal(t, userID, *entries[1].UserID)
	})
	t.Run("filtered by category", func(t *testing.T) {
		entries, err := s.ListEntries(ctx, userID, "strength")
		assert.NoError(t, err)
		assert.Equal(t, 1, len(entries))
		assert.Equal(t, "strength", entries[0].Category)
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		_, err := s.ListEntries(ctx, userID, "")
		assert.Error(t, err)
	})
}

func TestCreateEntry(t *testing.T) {
	mock := &libraryRepoMock{state: stateSuccess}
	s := service.NewLibraryService(mock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		entry, err := s.CreateEntry(ctx, userID, &service.CreateEntryRequest{
			Name:     "Calf Raise",
			Category: "rehab",
			Sets:     3,
			Reps:     "15",
		})
		assert.NoError(t, err)
		// Owner comes from the token, never from the payload
		assert.Equal(t, userID, *entry.UserID)
		assert.True(t, entry.IsActive)
	})
	t.Run("bad category", func(t *testing.T) {
		_, err := s.CreateEntry(ctx, userID, &service.CreateEntryRequest{
			Name:     "Calf Raise",
			Category: "stretching",
		})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("bad source url", func(t *testing.T) {
		_, err := s.CreateEntry(ctx, userID, &service.CreateEntryRequest{
			Name:      "Calf Raise",
			Category:  "rehab",
			SourceURL: "not a url",
		})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("user not found", func(t *testing.T) {
		mock.state = stateOwnerNotFound
		_, err := s.CreateEntry(ctx, userID, &service.CreateEntryRequest{
			Name:     "Calf Raise",
			Category: "rehab",
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		_, err := s.CreateEntry(ctx, userID, &service.CreateEntryRequest{
			Name:     "Calf Raise",
			Category: "rehab",
		})
		assert.Error(t, err)
	})
}

func TestUpdateEntry(t *testing.T) {
	mock := &libraryRepoMock{state: stateSuccess}
	s := service.NewLibraryService(mock)
	ctx := context.Background()
	t.Run("changes only provided fields", func(t *testing.T) {
		newCue := "knees out"
		newSets := 3
		entry, err := s.UpdateEntry(ctx, userID, entryID, &service.UpdateEntryRequest{
			FormCue: &newCue,
			Sets:    &newSets,
		})
		assert.NoError(t, err)
		assert.Equal(t, newCue, entry.FormCue)
		assert.Equal(t, newSets, entry.Sets)
		assert.Equal(t, "Back Squat", entry.Name)
		assert.Equal(t, "5", entry.Reps)
		assert.Equal(t, entry, mock.lastUpdated)
	})
	t.Run("bad category", func(t *testing.T) {
		before := mock.lastUpdated
		category := "stretching"
		_, err := s.UpdateEntry(ctx, userID, entryID, &service.UpdateEntryRequest{Category: &category})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
		assert.Same(t, before, mock.lastUpdated)
	})
	t.Run("bad source url", func(t *testing.T) {
		before := mock.lastUpdated
		sourceURL := "not a url"
		_, err := s.UpdateEntry(ctx, userID, entryID, &service.UpdateEntryRequest{SourceURL: &sourceURL})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
		assert.Same(t, before, mock.lastUpdated)
	})
	t.Run("global entry", func(t *testing.T) {
		mock.state = stateGlobalEntry
		name := "Renamed"
		_, err := s.UpdateEntry(ctx, userID, entryID, &service.UpdateEntryRequest{Name: &name})
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("wrong owner", func(t *testing.T) {
		mock.state = stateWrongOwner
		name := "Renamed"
		_, err := s.UpdateEntry(ctx, userID, entryID, &service.UpdateEntryRequest{Name: &name})
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("not found", func(t *testing.T) {
		mock.state = stateNotFound
		_, err := s.UpdateEntry(ctx, userID, entryID, &service.UpdateEntryRequest{})
		assert.ErrorIs(t, err, errorvalues.ErrEntryNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		_, err := s.UpdateEntry(ctx, userID, entryID, &service.UpdateEntryRequest{})
		assert.Error(t, err)
	})
}

func TestDeleteEntry(t *testing.T) {
	mock := &libraryRepoMock{state: stateSuccess}
	s := service.NewLibraryService(mock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		err := s.DeleteEntry(ctx, userID, entryID)
		assert.NoError(t, err)
	})
	t.Run("global entry", func(t *testing.T) {
		mock.state = stateGlobalEntry
		err := s.DeleteEntry(ctx, userID, entryID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("wrong owner", func(t *testing.T) {
		mock.state = stateWrongOwner
		err := s.DeleteEntry(ctx, userID, entryID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("not found", func(t *testing.T) {
		mock.state = stateNotFound
		err := s.DeleteEntry(ctx, userID, entryID)
		assert.ErrorIs(t, err, errorvalues.ErrEntryNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		err := s.DeleteEntry(ctx, userID, entryID)
		assert.Error(t, err)
	})
}
