package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/granger49/Protocol/pkg/entity"
)

// Postgres returns DATE columns as time.Time; entities carry dates as plain
// YYYY-MM-DD strings, so every read formats through this layout.
const dateLayout = "2006-01-02"

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type TemplatesRepositoryI interface {
	// Inserts a new weekly template. If template.IsActive is set, every other
	// template of the owner is deactivated in the same transaction.
	Create(ctx context.Context, template *entity.Template) (*entity.Template, error)
	// Searches template with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Template, error)
	// Lists templates owned by uid, active first, then newest first
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Template, error)
	// Returns uid's currently active template
	GetActive(ctx context.Context, uid uuid.UUID) (*entity.Template, error)
	// Deactivates all of uid's templates and activates exactly id, in one
	// transaction
	Activate(ctx context.Context, uid, id uuid.UUID) (*entity.Template, error)
	// Deletes template with id owned by uid
	Delete(ctx context.Context, uid, id uuid.UUID) error
	// Counts templates owned by uid. Used to decide whether to seed
	CountByUserID(ctx context.Context, uid uuid.UUID) (int, error)
}

type WorkoutsRepositoryI interface {
	// Upserts the workout log on (user_id, date) and replaces its exercise
	// logs wholesale with the given set, all in one transaction
	Submit(ctx context.Context, workout *entity.WorkoutLog, exercises []entity.ExerciseLog) (*entity.WorkoutLog, error)
	// Returns uid's workout log for date
	GetByDate(ctx context.Context, uid uuid.UUID, date string) (*entity.WorkoutLog, error)
	// Lists exercise logs belonging to a workout log
	GetExercises(ctx context.Context, workoutLogID uuid.UUID) ([]entity.ExerciseLog, error)
}

type PushesRepositoryI interface {
	// Records an exercise carried from one date to another. Pure insert,
	// duplicates allowed
	Create(ctx context.Context, push *entity.PushedExercise) (*entity.PushedExercise, error)
	// Lists uid's not-yet-completed pushes targeting date
	ListPending(ctx context.Context, uid uuid.UUID, date string) ([]entity.PushedExercise, error)
}

type LibraryRepositoryI interface {
	// Lists active entries visible to uid: global rows plus uid's own.
	// Category narrows the result when non-empty
	GetVisible(ctx context.Context, uid uuid.UUID, category string) ([]entity.LibraryEntry, error)
	// Searches active entry with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.LibraryEntry, error)
	// Inserts a custom entry owned by entry.UserID
	Create(ctx context.Context, entry *entity.LibraryEntry) (*entity.LibraryEntry, error)
	// Overwrites an entry's fields, scoped to owner uid
	Update(ctx context.Context, uid uuid.UUID, entry *entity.LibraryEntry) error
	// Marks entry inactive rather than removing the row
	SoftDelete(ctx context.Context, uid, id uuid.UUID) error
}

type RecordsRepositoryI interface {
	// Lists uid's records, newest date first. ExerciseName narrows the result
	// when non-empty
	GetByUserID(ctx context.Context, uid uuid.UUID, exerciseName string) ([]entity.PersonalRecord, error)
	// Inserts the record or, on natural-key conflict, refreshes its date
	Upsert(ctx context.Context, record *entity.PersonalRecord) (*entity.PersonalRecord, error)
}

type PreferencesRepositoryI interface {
	Get(ctx context.Context, uid uuid.UUID) (*entity.Preferences, error)
	Upsert(ctx context.Context, prefs *entity.Preferences) (*entity.Preferences, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
