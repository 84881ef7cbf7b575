package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

// OtherItem is a freeform schedule entry that is not looked up in the
// exercise library (steam room, sauna, etc).
type OtherItem struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Type     string `json:"type"`
}

// DaySections groups the day's exercises by category. Everything except
// Other holds exercise names resolvable through the library.
type DaySections struct {
	Warmup    []string    `json:"warmup"`
	Strength  []string    `json:"strength"`
	Stability []string    `json:"stability"`
	Cardio    []string    `json:"cardio"`
	Mobility  []string    `json:"mobility"`
	Tone      []string    `json:"tone"`
	Rehab     []string    `json:"rehab"`
	Other     []OtherItem `json:"other"`
}

type DaySchedule struct {
	Name     string      `json:"name"`
	Sections DaySections `json:"sections"`
}

// WeekSchedule is the full seven-day plan embedded in a template. It is an
// immutable value: edits produce a new template, not an in-place change.
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// Day returns the schedule for a lowercase weekday name.
func (ws *WeekSchedule) Day(name string) (DaySchedule, bool) {
	switch name {
	case "monday":
		return ws.Monday, true
	case "tuesday":
		return ws.Tuesday, true
	case "wednesday":
		return ws.Wednesday, true
	case "thursday":
		return ws.Thursday, true
	case "friday":
		return ws.Friday, true
	case "saturday":
		return ws.Saturday, true
	case "sunday":
		return ws.Sunday, true
	}
	return DaySchedule{}, false
}

type Template struct {
	ID               uuid.UUID    `json:"id"`
	UserID           uuid.UUID    `json:"user_id"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Schedule         WeekSchedule `json:"schedule"`
	IsActive         bool         `json:"is_active"`
	CreatedBy        string       `json:"created_by"`
	Version          int          `json:"version"`
	ParentTemplateID *uuid.UUID   `json:"parent_template_id,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// WorkoutLog is the per-date record of what the user actually did.
// Date is day-granular and carried as "YYYY-MM-DD" end to end.
type WorkoutLog struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Date             string    `json:"date"`
	DayOfWeek        string    `json:"day_of_week"`
	ScheduledWorkout string    `json:"scheduled_workout"`
	AchillesPain     int       `json:"achilles_pain"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ExerciseLog struct {
	ID           uuid.UUID  `json:"id"`
	WorkoutLogID uuid.UUID  `json:"workout_log_id"`
	UserID       uuid.UUID  `json:"user_id"`
	ExerciseName string     `json:"exercise_name"`
	Category     string     `json:"category"`
	Completed    bool       `json:"completed"`
	Weight       string     `json:"weight"`
	Reps         string     `json:"reps"`
	Notes        string     `json:"notes"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type PushedExercise struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	ExerciseName string    `json:"exercise_name"`
	FromDate     string    `json:"from_date"`
	ToDate       string    `json:"to_date"`
	Completed    bool      `json:"completed"`
	CreatedAt    time.Time `json:"created_at"`
}

// LibraryEntry is one exercise definition. UserID nil marks a global entry
// visible to everyone; non-nil marks a private custom entry.
type LibraryEntry struct {
	ID               uuid.UUID  `json:"id"`
	UserID           *uuid.UUID `json:"user_id,omitempty"`
	Name             string     `json:"name"`
	Category         string     `json:"category"`
	FormCue          string     `json:"form_cue"`
	Sets             int        `json:"sets"`
	Reps             string     `json:"reps"`
	Duration         string     `json:"duration"`
	RestSec          int        `json:"rest_sec"`
	IntensityPercent string     `json:"intensity_percent"`
	Alternatives     []string   `json:"alternatives"`
	Tags             []string   `json:"tags"`
	Source           string     `json:"source"`
	SourceURL        string     `json:"source_url"`
	IsActive         bool       `json:"is_active"`
	CreatedAt        time.Time  `json:"created_at"`
}

// PersonalRecord is one distinct logged performance, not a running maximum.
// The natural key is (user, exercise, weight, reps, sets).
type PersonalRecord struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	ExerciseName string    `json:"exercise_name"`
	Weight       float64   `json:"weight"`
	Reps         int       `json:"reps"`
	Sets         int       `json:"sets"`
	Date         string    `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
}

type Preferences struct {
	UserID             uuid.UUID `json:"user_id"`
	BasketballDays     []string  `json:"basketball_days"`
	EquipmentAvailable []string  `json:"equipment_available"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
