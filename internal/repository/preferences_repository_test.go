package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/granger49/Protocol/internal/error_values"
	"github.com/granger49/Protocol/internal/repository"
	"github.com/granger49/Protocol/pkg/entity"
)

func TestGetPreferences(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewPreferencesRepoWithConn(mock)
	prefs := entity.Preferences{
		UserID:             userID,
		BasketballDays:     []string{"tuesday", "saturday"},
		EquipmentAvailable: []string{"barbell", "bands"},
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT basketball_days, equipment_available, created_at, updated_at
		FROM user_preferences WHERE user_id = $1;`)
	ctx := context.Background()
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"basketball_days", "equipment_available", "created_at", "updated_at"}).
				AddRow(prefs.BasketballDays, prefs.EquipmentAvailable, prefs.CreatedAt, prefs.UpdatedAt))
		result, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, prefs, *result)
	})
	t.Run("never saved", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.Get(ctx, userID)
		assert.ErrorIs(t, err, errorvalues.ErrPreferencesNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnError(errors.New("db error"))
		_, err := repo.Get(ctx, userID)
		assert.Error(t, err)
	})
}

func TestUpsertPreferences(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewPreferencesRepoWithConn(mock)
	prefs := entity.Preferences{
		UserID:             userID,
		BasketballDays:     []string{"tuesday", "saturday"},
		EquipmentAvailable: []string{"barbell", "bands"},
	}
	query := regexp.QuoteMeta(`INSERT INTO user_preferences (user_id, basketball_days, equipment_available)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			basketball_days = EXCLUDED.basketball_days,
			equipment_available = EXCLUDED.equipment_available,
			updated_at = NOW()
		RETURNING created_at, updated_at;`)
	ctx := context.Background()
	t.Run("saved", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(prefs.UserID, prefs.BasketballDays, prefs.EquipmentAvailable).
			WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(time.Now(), time.Now()))
		saved, err := repo.Upsert(ctx, &prefs)
		assert.NoError(t, err)
		assert.Equal(t, prefs.BasketballDays, saved.BasketballDays)
		assert.False(t, saved.UpdatedAt.IsZero())
	})
	t.Run("FK violation", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(prefs.UserID, prefs.BasketballDays, prefs.EquipmentAvailable).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Upsert(ctx, &prefs)
		assert.ErrorIs(t, err, errorvalues.ErrOwnerNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(prefs.UserID, prefs.BasketballDays, prefs.EquipmentAvailable).
			WillReturnError(errors.New("db error"))
		_, err := repo.Upsert(ctx, &prefs)
		assert.Error(t, err)
	})
}
