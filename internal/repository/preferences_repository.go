package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/granger49/Protocol/internal/error_values"
	"github.com/granger49/Protocol/pkg/cleanup"
	"github.com/granger49/Protocol/pkg/entity"
)

type PreferencesRepository struct {
	conn PgConnection
}

func NewPreferencesRepo(cfg DBConfig) *PreferencesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for preferencesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for preferencesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &PreferencesRepository{
		conn: pool,
	}
}

func NewPreferencesRepoWithConn(conn PgConnection) *PreferencesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for preferencesRepo: " + err.Error())
	}
	return &PreferencesRepository{
		conn: conn,
	}
}

func (pr *PreferencesRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.Preferences, error) {
	var prefs entity.Preferences
	prefs.UserID = uid
	row := pr.conn.QueryRow(ctx, `SELECT basketball_days, equipment_available, created_at, updated_at
		FROM user_preferences WHERE user_id = $1;`, uid)
	err := row.Scan(&prefs.BasketballDays, &prefs.EquipmentAvailable, &prefs.CreatedAt, &prefs.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPreferencesNotFound
		}
		return nil, errors.New("getting preferences error: " + err.Error())
	}
	return &prefs, nil
}

func (pr *PreferencesRepository) Upsert(ctx context.Context, prefs *entity.Preferences) (*entity.Preferences, error) {
	saved := *prefs
	row := pr.conn.QueryRow(ctx, `INSERT INTO user_preferences (user_id, basketball_days, equipment_available)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			basketball_days = EXCLUDED.basketball_days,
			equipment_available = EXCLUDED.equipment_available,
			updated_at = NOW()
		RETURNING created_at, updated_at;`,
		prefs.UserID,
		prefs.BasketballDays,
		prefs.EquipmentAvailable,
	)
	if err := row.Scan(&saved.CreatedAt, &saved.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return nil, errorvalues.ErrOwnerNotFound
			}
		}
		return nil, errors.New("upserting preferences error: " + err.Error())
	}
	return &saved, nil
}
