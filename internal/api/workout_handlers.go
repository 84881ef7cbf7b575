package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"

	errorvalues "github.com/granger49/Protocol/internal/error_values"
	"github.com/granger49/Protocol/internal/service"
	"github.com/granger49/Protocol/pkg/httputil"
)

type SubmitWorkoutRequest struct {
	Date             string                  `json:"date"`
	DayOfWeek        string                  `json:"day_of_week"`
	ScheduledWorkout string                  `json:"scheduled_workout"`
	AchillesPain     int                     `json:"achilles_pain"`
	Notes            string                  `json:"notes"`
	Exercises        []service.ExerciseEntry `json:"exercises"`
}

type PushExerciseRequest struct {
	ExerciseName string `json:"exercise_name"`
	FromDate     string `json:"from_date"`
	ToDate       string `json:"to_date"`
}

func (s *Server) SubmitWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("submit workout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SubmitWorkoutRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("submit workout error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	workout, err := s.workoutService.SubmitWorkout(ctx, uid, &service.SubmitWorkoutRequest{
		Date:             req.Date,
		DayOfWeek:        req.DayOfWeek,
		ScheduledWorkout: req.ScheduledWorkout,
		AchillesPain:     req.AchillesPain,
		Notes:            req.Notes,
		Exercises:        req.Exercises,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrInvalidDate):
			logger.Error("submit workout error: invalid fields", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout fields", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("submit workout error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't submit workout: user doesn't exists", nil)
		default:
			logger.Error("submit workout error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while submitting workout", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"workout": workout,
	})
	logger.Info("workout submitted")
}

func (s *Server) GetWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get workout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date := chi.URLParam(r, "date")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	view, err := s.workoutService.GetDay(ctx, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidDate) {
			logger.Error("get workout error: invalid date in path value")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date in path value", nil)
			return
		}
		logger.Error("get workout error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting workout", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
	logger.Info("workout provided")
}

func (s *Server) PushExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("push exercise error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req PushExerciseRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("push exercise error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	pushed, err := s.workoutService.PushExercise(ctx, uid, &service.PushExerciseRequest{
		ExerciseName: req.ExerciseName,
		FromDate:     req.FromDate,
		ToDate:       req.ToDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrInvalidDate):
			logger.Error("push exercise error: invalid fields", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid push fields", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("push exercise error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't push exercise: user doesn't exists", nil)
		default:
			logger.Error("push exercise error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while pushing exercise", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"success": true,
		"pushed":  pushed,
	})
	logger.Info("exercise pushed")
}

func (s *Server) GetPushedExercises(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get pushed exercises error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date := chi.URLParam(r, "date")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	pushed, err := s.workoutService.ListPendingPushes(ctx, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidDate) {
			logger.Error("get pushed exercises error: invalid date in path value")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date in path value", nil)
			return
		}
		logger.Error("get pushed exercises error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting pushed exercises", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"pushed": pushed})
	logger.Info("pushed exercises provided")
}
