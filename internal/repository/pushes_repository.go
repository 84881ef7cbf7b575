package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/granger49/Protocol/internal/error_values"
	"github.com/granger49/Protocol/pkg/cleanup"
	"github.com/granger49/Protocol/pkg/entity"
)

type PushesRepository struct {
	conn PgConnection
}

func NewPushesRepo(cfg DBConfig) *PushesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for pushesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for pushesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &PushesRepository{
		conn: pool,
	}
}

func NewPushesRepoWithConn(conn PgConnection) *PushesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for pushesRepo: " + err.Error())
	}
	return &PushesRepository{
		conn: conn,
	}
}

// Create is a pure insert: pushing the same exercise to the same date twice
// creates two rows.
func (pr *PushesRepository) Create(ctx context.Context, push *entity.PushedExercise) (*entity.PushedExercise, error) {
	created := *push
	row := pr.conn.QueryRow(ctx, `INSERT INTO pushed_exercises (user_id, exercise_name, from_date, to_date)
		VALUES ($1, $2, $3, $4) RETURNING id, completed, created_at;`,
		push.UserID,
		push.ExerciseName,
		push.FromDate,
		push.ToDate,
	)
	if err := row.Scan(&created.ID, &created.Completed, &created.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return nil, errorvalues.ErrOwnerNotFound
			}
		}
		return nil, errors.New("creating pushed exercise error: " + err.Error())
	}
	return &created, nil
}

func (pr *PushesRepository) ListPending(ctx context.Context, uid uuid.UUID, date string) ([]entity.PushedExercise, error) {
	pushes := make([]entity.PushedExercise, 0)
	rows, err := pr.conn.Query(ctx, `SELECT id, user_id, exercise_name, from_date, to_date, completed, created_at
		FROM pushed_exercises WHERE user_id = $1 AND to_date = $2 AND completed = FALSE ORDER BY created_at;`, uid, date)
	if err != nil {
		return nil, errors.New("listing pending pushes error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		p := entity.PushedExercise{}
		var fromDate, toDate time.Time
		err = rows.Scan(&p.ID, &p.UserID, &p.ExerciseName, &fromDate, &toDate, &p.Completed, &p.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling pushed exercise error: " + err.Error())
		}
		p.FromDate = fromDate.Format(dateLayout)
		p.ToDate = toDate.Format(dateLayout)
		pushes = append(pushes, p)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected pushed rows error: " + rows.Err().Error())
	}
	return pushes, nil
}
