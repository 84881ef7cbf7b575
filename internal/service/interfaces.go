package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/granger49/Protocol/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type CreateTemplateRequest struct {
	Name        string              `validate:"required,min=1,max=200"`
	Description string              `validate:"max=2000"`
	Schedule    entity.WeekSchedule `validate:"-"`
	IsActive    bool                `validate:"-"`
	CreatedBy   string              `validate:"omitempty,oneof=user system"`
}

type TemplateServiceI interface {
	// Lists uid's templates, active first, then newest first
	ListTemplates(ctx context.Context, uid uuid.UUID) ([]*entity.Template, error)
	// Creates a template; when requested active, the user's other templates
	// lose the flag in the same transaction
	CreateTemplate(ctx context.Context, uid uuid.UUID, req *CreateTemplateRequest) (*entity.Template, error)
	// Makes exactly one template active for uid
	ActivateTemplate(ctx context.Context, uid, id uuid.UUID) (*entity.Template, error)
	// Deletes a template unless it is the active one
	DeleteTemplate(ctx context.Context, uid, id uuid.UUID) error
	GetActiveTemplate(ctx context.Context, uid uuid.UUID) (*entity.Template, error)
	// Gives a fresh user the built-in program. No-ops when the user already
	// owns any template
	SeedDefaultTemplate(ctx context.Context, uid uuid.UUID) error
}

type ExerciseEntry struct {
	ExerciseName string `json:"exercise_name" validate:"required,max=200"`
	Category     string `json:"category" validate:"required,oneof=warmup strength stability cardio mobility tone rehab other pushed"`
	Completed    bool   `json:"completed"`
	Weight       string `json:"weight" validate:"max=50"`
	Reps         string `json:"reps" validate:"max=50"`
	Notes        string `json:"notes" validate:"max=2000"`
}

type SubmitWorkoutRequest struct {
	Date             string          `validate:"required"`
	DayOfWeek        string          `validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	ScheduledWorkout string          `validate:"max=200"`
	AchillesPain     int             `validate:"gte=0,lte=10"`
	Notes            string          `validate:"max=4000"`
	Exercises        []ExerciseEntry `validate:"dive"`
}

type PushExerciseRequest struct {
	ExerciseName string `validate:"required,max=200"`
	FromDate     string `validate:"required"`
	ToDate       string `validate:"required"`
}

// DayView is everything the daily screen needs: the log (nil when the date
// was never submitted), its exercise rows and the pushes targeting the date.
type DayView struct {
	Workout   *entity.WorkoutLog      `json:"workout"`
	Exercises []entity.ExerciseLog    `json:"exercises"`
	Pushed    []entity.PushedExercise `json:"pushed"`
}

type WorkoutServiceI interface {
	// Replaces the date's log and exercise set with the submitted payload
	SubmitWorkout(ctx context.Context, uid uuid.UUID, req *SubmitWorkoutRequest) (*entity.WorkoutLog, error)
	// Composite read for one date. A date without a log is not an error
	GetDay(ctx context.Context, uid uuid.UUID, date string) (*DayView, error)
	// Carries an exercise forward to another date
	PushExercise(ctx context.Context, uid uuid.UUID, req *PushExerciseRequest) (*entity.PushedExercise, error)
	// Lists not-yet-completed pushes targeting date
	ListPendingPushes(ctx context.Context, uid uuid.UUID, date string) ([]entity.PushedExercise, error)
}

type CreateEntryRequest struct {
	Name             string   `validate:"required,max=200"`
	Category         string   `validate:"required,oneof=warmup strength stability cardio mobility tone rehab other"`
	FormCue          string   `validate:"max=2000"`
	Sets             int      `validate:"gte=0"`
	Reps             string   `validate:"max=50"`
	Duration         string   `validate:"max=50"`
	RestSec          int      `validate:"gte=0"`
	IntensityPercent string   `validate:"max=50"`
	Alternatives     []string `validate:"-"`
	Tags             []string `validate:"-"`
	Source           string   `validate:"max=200"`
	SourceURL        string   `validate:"omitempty,url"`
}

// UpdateEntryRequest carries only the fields the caller wants to change.
type UpdateEntryRequest struct {
	Name             *string
	Category         *string
	FormCue          *string
	Sets             *int
	Reps             *string
	Duration         *string
	RestSec          *int
	IntensityPercent *string
	Alternatives     *[]string
	Tags             *[]string
	Source           *string
	SourceURL        *string
}

type LibraryServiceI interface {
	// Lists entries visible to uid: global plus own, active only
	ListEntries(ctx context.Context, uid uuid.UUID, category string) ([]entity.LibraryEntry, error)
	// Creates a custom entry owned by uid
	CreateEntry(ctx context.Context, uid uuid.UUID, req *CreateEntryRequest) (*entity.LibraryEntry, error)
	// Applies a partial update to an entry uid owns
	UpdateEntry(ctx context.Context, uid, id uuid.UUID, req *UpdateEntryRequest) (*entity.LibraryEntry, error)
	// Soft-deletes an entry uid owns
	DeleteEntry(ctx context.Context, uid, id uuid.UUID) error
}

type UpsertRecordRequest struct {
	ExerciseName string  `validate:"required,max=200"`
	Weight       float64 `validate:"gte=0"`
	Reps         int     `validate:"gte=1"`
	Sets         int     `validate:"gte=1"`
	Date         string  `validate:"required"`
}

type RecordServiceI interface {
	// Lists uid's records, newest date first, optionally for one exercise
	ListRecords(ctx context.Context, uid uuid.UUID, exerciseName string) ([]entity.PersonalRecord, error)
	// Records a performance, deduplicated on (exercise, weight, reps, sets)
	UpsertRecord(ctx context.Context, uid uuid.UUID, req *UpsertRecordRequest) (*entity.PersonalRecord, error)
}

type UpdatePreferencesRequest struct {
	BasketballDays     []string `validate:"dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	EquipmentAvailable []string `validate:"dive,max=100"`
}

type PreferencesServiceI interface {
	// Returns uid's preferences, or empty defaults when never saved
	GetPreferences(ctx context.Context, uid uuid.UUID) (*entity.Preferences, error)
	UpdatePreferences(ctx context.Context, uid uuid.UUID, req *UpdatePreferencesRequest) (*entity.Preferences, error)
}
