package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/granger49/Protocol/internal/error_values"
	"github.com/granger49/Protocol/internal/repository"
	"github.com/granger49/Protocol/pkg/entity"
)

type WorkoutService struct {
	workoutsRepo repository.WorkoutsRepositoryI
	pushesRepo   repository.PushesRepositoryI
}

func NewWorkoutService(workoutsRepo repository.WorkoutsRepositoryI, pushesRepo repository.PushesRepositoryI) *WorkoutService {
	if workoutsRepo == nil || pushesRepo == nil {
		log.Fatal("on workout service provided nil repos")
	}
	return &WorkoutService{
		workoutsRepo: workoutsRepo,
		pushesRepo:   pushesRepo,
	}
}

// SubmitWorkout replaces the date's exercise set wholesale: the stored rows
// after a successful call equal the submitted payload, nothing is merged.
//
// TODO: pushed_exercises rows targeting this date stay pending even when the
// matching exercise is submitted completed, so they resurface on later reads.
// Closing them needs a product call on how pushes match log rows (by name?).
func (ws *WorkoutService) SubmitWorkout(ctx context.Context, uid uuid.UUID, req *SubmitWorkoutRequest) (*entity.WorkoutLog, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}
	exercises := make([]entity.ExerciseLog, 0, len(req.Exercises))
	for _, ex := range req.Exercises {
		exercises = append(exercises, entity.ExerciseLog{
			UserID:       uid,
			ExerciseName: ex.ExerciseName,
			Category:     ex.Category,
			Completed:    ex.Completed,
			Weight:       ex.Weight,
			Reps:         ex.Reps,
			Notes:        ex.Notes,
		})
	}
	workout, err := ws.workoutsRepo.Submit(ctx, &entity.WorkoutLog{
		UserID:           uid,
		Date:             req.Date,
		DayOfWeek:        req.DayOfWeek,
		ScheduledWorkout: req.ScheduledWorkout,
		AchillesPain:     req.AchillesPain,
		Notes:            req.Notes,
	}, exercises)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return workout, nil
}

func (ws *WorkoutService) GetDay(ctx context.Context, uid uuid.UUID, date string) (*DayView, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	view := DayView{
		Exercises: make([]entity.ExerciseLog, 0),
	}
	workout, err := ws.workoutsRepo.GetByDate(ctx, uid, date)
	switch {
	case err == nil:
		view.Workout = workout
		exercises, err := ws.workoutsRepo.GetExercises(ctx, workout.ID)
		if err != nil {
			return nil, errors.New("workouts repository error: " + err.Error())
		}
		view.Exercises = exercises
	case errors.Is(err, errorvalues.ErrWorkoutNotFound):
		// Never-submitted date: workout stays nil, not an error.
	default:
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	pushed, err := ws.pushesRepo.ListPending(ctx, uid, date)
	if err != nil {
		return nil, errors.New("pushes repository error: " + err.Error())
	}
	view.Pushed = pushed
	return &view, nil
}

func (ws *WorkoutService) PushExercise(ctx context.Context, uid uuid.UUID, req *PushExerciseRequest) (*entity.PushedExercise, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	if err := validateDate(req.FromDate); err != nil {
		return nil, err
	}
	if err := validateDate(req.ToDate); err != nil {
		return nil, err
	}
	push, err := ws.pushesRepo.Create(ctx, &entity.PushedExercise{
		UserID:       uid,
		ExerciseName: req.ExerciseName,
		FromDate:     req.FromDate,
		ToDate:       req.ToDate,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("pushes repository error: " + err.Error())
	}
	return push, nil
}

func (ws *WorkoutService) ListPendingPushes(ctx context.Context, uid uuid.UUID, date string) ([]entity.PushedExercise, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	pushed, err := ws.pushesRepo.ListPending(ctx, uid, date)
	if err != nil {
		return nil, errors.New("pushes repository error: " + err.Error())
	}
	return pushed, nil
}
