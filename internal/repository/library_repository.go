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

type LibraryRepository struct {
	conn PgConnection
}

func NewLibraryRepo(cfg DBConfig) *LibraryRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for libraryRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for libraryRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &LibraryRepository{
		conn: pool,
	}
}

func NewLibraryRepoWithConn(conn PgConnection) *LibraryRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for libraryRepo: " + err.Error())
	}
	return &LibraryRepository{
		conn: conn,
	}
}

const libraryColumns = `id, user_id, name, category, form_cue, sets, reps, duration, rest_sec, intensity_percent, alternatives, tags, source, source_url, is_active, created_at`

func scanLibraryEntry(row pgx.Row, entry *entity.LibraryEntry) error {
	return row.Scan(&entry.ID, &entry.UserID, &entry.Name, &entry.Category, &entry.FormCue,
		&entry.Sets, &entry.Reps, &entry.Duration, &entry.RestSec, &entry.IntensityPercent,
		&entry.Alternatives, &entry.Tags, &entry.Source, &entry.SourceURL, &entry.IsActive, &entry.CreatedAt)
}

// GetVisible lists active entries a user can see: shared rows with no owner
// plus the user's own custom rows.
func (lr *LibraryRepository) GetVisible(ctx context.Context, uid uuid.UUID, category string) ([]entity.LibraryEntry, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if category == "" {
		rows, err = lr.conn.Query(ctx, `SELECT `+libraryColumns+` FROM exercise_library
			WHERE (user_id IS NULL OR user_id = $1) AND is_active ORDER BY name;`, uid)
	} else {
		rows, err = lr.conn.Query(ctx, `SELECT `+libraryColumns+` FROM exercise_library
			WHERE (user_id IS NULL OR user_id = $1) AND is_active AND category = $2 ORDER BY name;`, uid, category)
	}
	if err != nil {
		return nil, errors.New("listing library entries error: " + err.Error())
	}
	defer rows.Close()
	entries := make([]entity.LibraryEntry, 0)
	for rows.Next() {
		e := entity.LibraryEntry{}
		if err = scanLibraryEntry(rows, &e); err != nil {
			return nil, errors.New("unmarshalling library entry error: " + err.Error())
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected library rows error: " + rows.Err().Error())
	}
	return entries, nil
}

func (lr *LibraryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.LibraryEntry, error) {
	var entry entity.LibraryEntry
	row := lr.conn.QueryRow(ctx, `SELECT `+libraryColumns+` FROM exercise_library WHERE id = $1 AND is_active;`, id)
	if err := scanLibraryEntry(row, &entry); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEntryNotFound
		}
		return nil, errors.New("getting library entry error: " + err.Error())
	}
	return &entry, nil
}

// Create always stamps the new row with its creator: custom entries are never
// global.
func (lr *LibraryRepository) Create(ctx context.Context, entry *entity.LibraryEntry) (*entity.LibraryEntry, error) {
	created := *entry
	row := lr.conn.QueryRow(ctx, `INSERT INTO exercise_library (user_id, name, category, form_cue, sets, reps, duration, rest_sec, intensity_percent, alternatives, tags, source, source_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id, is_active, created_at;`,
		entry.UserID,
		entry.Name,
		entry.Category,
		entry.FormCue,
		entry.Sets,
		entry.Reps,
		entry.Duration,
		entry.RestSec,
		entry.IntensityPercent,
		entry.Alternatives,
		entry.Tags,
		entry.Source,
		entry.SourceURL,
	)
	if err := row.Scan(&created.ID, &created.IsActive, &created.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return nil, errorvalues.ErrOwnerNotFound
			}
		}
		return nil, errors.New("creating library entry error: " + err.Error())
	}
	return &created, nil
}

func (lr *LibraryRepository) Update(ctx context.Context, uid uuid.UUID, entry *entity.LibraryEntry) error {
	ct, err := lr.conn.Exec(ctx, `UPDATE exercise_library SET name = $1, category = $2, form_cue = $3, sets = $4, reps = $5,
		duration = $6, rest_sec = $7, intensity_percent = $8, alternatives = $9, tags = $10, source = $11, source_url = $12
		WHERE id = $13 AND user_id = $14;`,
		entry.Name,
		entry.Category,
		entry.FormCue,
		entry.Sets,
		entry.Reps,
		entry.Duration,
		entry.RestSec,
		entry.IntensityPercent,
		entry.Alternatives,
		entry.Tags,
		entry.Source,
		entry.SourceURL,
		entry.ID,
		uid,
	)
	if err != nil {
		return errors.New("updating library entry error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrEntryNotFound
	}
	return nil
}

func (lr *LibraryRepository) SoftDelete(ctx context.Context, uid, id uuid.UUID) error {
	ct, err := lr.conn.Exec(ctx, `UPDATE exercise_library SET is_active = FALSE WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return errors.New("deleting library entry error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrEntryNotFound
	}
	return nil
}
