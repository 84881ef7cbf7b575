package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/granger49/Protocol/internal/error_values"
	"github.com/granger49/Protocol/pkg/cleanup"
	"github.com/granger49/Protocol/pkg/entity"
)

type RecordsRepository struct {
	conn PgConnection
}

func NewRecordsRepo(cfg DBConfig) *RecordsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for recordsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for recordsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &RecordsRepository{
		conn: pool,
	}
}

func NewRecordsRepoWithConn(conn PgConnection) *RecordsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for recordsRepo: " + err.Error())
	}
	return &RecordsRepository{
		conn: conn,
	}
}

func (rr *RecordsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, exerciseName string) ([]entity.PersonalRecord, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if exerciseName == "" {
		rows, err = rr.conn.Query(ctx, `SELECT id, user_id, exercise_name, weight, reps, sets, date, created_at
			FROM personal_records WHERE user_id = $1 ORDER BY date DESC;`, uid)
	} else {
		rows, err = rr.conn.Query(ctx, `SELECT id, user_id, exercise_name, weight, reps, sets, date, created_at
			FROM personal_records WHERE user_id = $1 AND exercise_name = $2 ORDER BY date DESC;`, uid, exerciseName)
	}
	if err != nil {
		return nil, errors.New("listing personal records error: " + err.Error())
	}
	defer rows.Close()
	records := make([]entity.PersonalRecord, 0)
	for rows.Next() {
		r := entity.PersonalRecord{}
		var day time.Time
		err = rows.Scan(&r.ID, &r.UserID, &r.ExerciseName, &r.Weight, &r.Reps, &r.Sets, &day, &r.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling personal record error: " + err.Error())
		}
		r.Date = day.Format(dateLayout)
		records = append(records, r)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected record rows error: " + rows.Err().Error())
	}
	return records, nil
}

// Upsert dedupes on the five-part natural key: a resubmission of an identical
// performance only refreshes its date.
func (rr *RecordsRepository) Upsert(ctx context.Context, record *entity.PersonalRecord) (*entity.PersonalRecord, error) {
	saved := *record
	row := rr.conn.QueryRow(ctx, `INSERT INTO personal_records (user_id, exercise_name, weight, reps, sets, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, exercise_name, weight, reps, sets) DO UPDATE SET date = EXCLUDED.date
		RETURNING id, created_at;`,
		record.UserID,
		record.ExerciseName,
		record.Weight,
		record.Reps,
		record.Sets,
		record.Date,
	)
	if err := row.Scan(&saved.ID, &saved.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return nil, errorvalues.ErrOwnerNotFound
			}
		}
		return nil, errors.New("upserting personal record error: " + err.Error())
	}
	return &saved, nil
}
