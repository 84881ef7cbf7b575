package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/granger49/Protocol/internal/error_values"
	"github.com/granger49/Protocol/internal/service"
	"github.com/granger49/Protocol/pkg/entity"
	"github.com/granger49/Protocol/pkg/httputil"
)

type UpsertRecordRequest struct {
	ExerciseName string  `json:"exercise_name"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	Sets         int     `json:"sets"`
	Date         string  `json:"date"`
}

type GetRecordsResponse struct {
	Records []entity.PersonalRecord `json:"records"`
}

func (s *Server) GetRecords(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get records error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	exerciseName := r.URL.Query().Get("exercise_name")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	records, err := s.recordService.ListRecords(ctx, uid, exerciseName)
	if err != nil {
		logger.Error("getting records error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting personal records", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetRecordsResponse{
		Records: records,
	})
	logger.Info("records provided")
}

func (s *Server) UpsertRecord(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("upsert record error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpsertRecordRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("upsert record error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	record, err := s.recordService.UpsertRecord(ctx, uid, &service.UpsertRecordRequest{
		ExerciseName: req.ExerciseName,
		Weight:       req.Weight,
		Reps:         req.Reps,
		Sets:         req.Sets,
		Date:         req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrInvalidDate):
			logger.Error("upsert record error: invalid fields", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid record fields", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("upsert record error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't save record: user doesn't exists", nil)
		default:
			logger.Error("upsert record error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving record", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"record":  record,
	})
	logger.Info("record saved")
}
