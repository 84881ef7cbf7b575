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
	"github.com/granger49/Protocol/pkg/httputil"
)

type UpdatePreferencesRequest struct {
	BasketballDays     []string `json:"basketball_days"`
	EquipmentAvailable []string `json:"equipment_available"`
}

func (s *Server) GetPreferences(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get preferences error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	prefs, err := s.preferencesService.GetPreferences(ctx, uid)
	if err != nil {
		logger.Error("getting preferences error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting preferences", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"preferences": prefs})
	logger.Info("preferences provided")
}

func (s *Server) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update preferences error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpdatePreferencesRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update preferences error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	prefs, err := s.preferencesService.UpdatePreferences(ctx, uid, &service.UpdatePreferencesRequest{
		BasketballDays:     req.BasketballDays,
		EquipmentAvailable: req.EquipmentAvailable,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("update preferences error: invalid fields", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid preferences fields", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("update preferences error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't save preferences: user doesn't exists", nil)
		default:
			logger.Error("update preferences error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving preferences", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"success":     true,
		"preferences": prefs,
	})
	logger.Info("preferences saved")
}
