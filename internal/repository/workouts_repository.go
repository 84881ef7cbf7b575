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

type WorkoutsRepository struct {
	conn PgConnection
}

func NewWorkoutsRepo(cfg DBConfig) *WorkoutsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for workoutsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for workoutsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &WorkoutsRepository{
		conn: pool,
	}
}

func NewWorkoutsRepoWithConn(conn PgConnection) *WorkoutsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for workoutsRepo: " + err.Error())
	}
	return &WorkoutsRepository{
		conn: conn,
	}
}

// Submit upserts the workout log on (user_id, date), deletes the log's
// previous exercise rows and inserts the submitted set. All three steps share
// one transaction: after a successful call, the exercise set for that date
// exactly equals the submitted set.
func (wr *WorkoutsRepository) Submit(ctx context.Context, workout *entity.WorkoutLog, exercises []entity.ExerciseLog) (*entity.WorkoutLog, error) {
	tx, err := wr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning workout submission tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	saved := *workout
	row := tx.QueryRow(ctx, `INSERT INTO workout_logs (user_id, date, day_of_week, scheduled_workout, achilles_pain, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, date) DO UPDATE SET
			day_of_week = EXCLUDED.day_of_week,
			scheduled_workout = EXCLUDED.scheduled_workout,
			achilles_pain = EXCLUDED.achilles_pain,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at;`,
		workout.UserID,
		workout.Date,
		workout.DayOfWeek,
		workout.ScheduledWorkout,
		workout.AchillesPain,
		workout.Notes,
	)
	if err = row.Scan(&saved.ID, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return nil, errorvalues.ErrOwnerNotFound
			}
		}
		return nil, errors.New("upserting workout log error: " + err.Error())
	}
	_, err = tx.Exec(ctx, `DELETE FROM exercise_logs WHERE workout_log_id = $1;`, saved.ID)
	if err != nil {
		return nil, errors.New("clearing exercise logs error: " + err.Error())
	}
	now := time.Now()
	for i := range exercises {
		ex := &exercises[i]
		var completedAt *time.Time
		if ex.Completed {
			completedAt = &now
		}
		_, err = tx.Exec(ctx, `INSERT INTO exercise_logs (workout_log_id, user_id, exercise_name, category, completed, weight, reps, notes, completed_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
			saved.ID,
			workout.UserID,
			ex.ExerciseName,
			ex.Category,
			ex.Completed,
			ex.Weight,
			ex.Reps,
			ex.Notes,
			completedAt,
		)
		if err != nil {
			return nil, errors.New("inserting exercise log error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing workout submission error: " + err.Error())
	}
	return &saved, nil
}

func (wr *WorkoutsRepository) GetByDate(ctx context.Context, uid uuid.UUID, date string) (*entity.WorkoutLog, error) {
	var workout entity.WorkoutLog
	workout.UserID = uid
	var day time.Time
	row := wr.conn.QueryRow(ctx, `SELECT id, date, day_of_week, scheduled_workout, achilles_pain, notes, created_at, updated_at
		FROM workout_logs WHERE user_id = $1 AND date = $2;`, uid, date)
	err := row.Scan(&workout.ID, &day, &workout.DayOfWeek, &workout.ScheduledWorkout,
		&workout.AchillesPain, &workout.Notes, &workout.CreatedAt, &workout.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrWorkoutNotFound
		}
		return nil, errors.New("getting workout log error: " + err.Error())
	}
	workout.Date = day.Format(dateLayout)
	return &workout, nil
}

func (wr *WorkoutsRepository) GetExercises(ctx context.Context, workoutLogID uuid.UUID) ([]entity.ExerciseLog, error) {
	exercises := make([]entity.ExerciseLog, 0)
	rows, err := wr.conn.Query(ctx, `SELECT id, workout_log_id, user_id, exercise_name, category, completed, weight, reps, notes, completed_at, created_at
		FROM exercise_logs WHERE workout_log_id = $1 ORDER BY created_at;`, workoutLogID)
	if err != nil {
		return nil, errors.New("getting exercise logs error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		ex := entity.ExerciseLog{}
		err = rows.Scan(&ex.ID, &ex.WorkoutLogID, &ex.UserID, &ex.ExerciseName, &ex.Category,
			&ex.Completed, &ex.Weight, &ex.Reps, &ex.Notes, &ex.CompletedAt, &ex.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling exercise log error: " + err.Error())
		}
		exercises = append(exercises, ex)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected exercise rows error: " + rows.Err().Error())
	}
	return exercises, nil
}
