package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	errorvalues "github.com/granger49/Protocol/internal/error_values"
	"github.com/granger49/Protocol/internal/service"
	"github.com/granger49/Protocol/pkg/entity"
	"github.com/granger49/Protocol/pkg/httputil"
)

type CreateEntryRequest struct {
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	FormCue          string   `json:"form_cue"`
	Sets             int      `json:"sets"`
	Reps             string   `json:"reps"`
	Duration         string   `json:"duration"`
	RestSec          int      `json:"rest_sec"`
	IntensityPercent string   `json:"intensity_percent"`
	Alternatives     []string `json:"alternatives"`
	Tags             []string `json:"tags"`
	Source           string   `json:"source"`
	SourceURL        string   `json:"source_url"`
}

// UpdateEntryRequest uses pointers so absent fields stay untouched.
type UpdateEntryRequest struct {
	Name             *string   `json:"name"`
	Category         *string   `json:"category"`
	FormCue          *string   `json:"form_cue"`
	Sets             *int      `json:"sets"`
	Reps             *string   `json:"reps"`
	Duration         *string   `json:"duration"`
	RestSec          *int      `json:"rest_sec"`
	IntensityPercent *string   `json:"intensity_percent"`
	Alternatives     *[]string `json:"alternatives"`
	Tags             *[]string `json:"tags"`
	Source           *string   `json:"source"`
	SourceURL        *string   `json:"source_url"`
}

type GetLibraryResponse struct {
	Exercises []entity.LibraryEntry `json:"exercises"`
}

func (s *Server) GetLibrary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get library error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	category := r.URL.Query().Get("category")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entries, err := s.libraryService.ListEntries(ctx, uid, category)
	if err != nil {
		logger.Error("getting library error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting exercise library", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetLibraryResponse{
		Exercises: entries,
	})
	logger.Info("library provided")
}

func (s *Server) CreateLibraryEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create library entry error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateEntryRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create library entry error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.libraryService.CreateEntry(ctx, uid, &service.CreateEntryRequest{
		Name:             req.Name,
		Category:         req.Category,
		FormCue:          req.FormCue,
		Sets:             req.Sets,
		Reps:             req.Reps,
		Duration:         req.Duration,
		RestSec:          req.RestSec,
		IntensityPercent: req.IntensityPercent,
		Alternatives:     req.Alternatives,
		Tags:             req.Tags,
		Source:           req.Source,
		SourceURL:        req.SourceURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create library entry error: invalid fields", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid exercise fields", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create library entry error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create exercise: user doesn't exists", nil)
		default:
			logger.Error("create library entry error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating exercise", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"success":  true,
		"exercise": entry,
	})
	logger.Info("library entry created")
}

func (s *Server) UpdateLibraryEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update library entry error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("update library entry error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid exercise id in path value", nil)
		return
	}
	var req UpdateEntryRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update library entry error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.libraryService.UpdateEntry(ctx, uid, id, &service.UpdateEntryRequest{
		Name:             req.Name,
		Category:         req.Category,
		FormCue:          req.FormCue,
		Sets:             req.Sets,
		Reps:             req.Reps,
		Duration:         req.Duration,
		RestSec:          req.RestSec,
		IntensityPercent: req.IntensityPercent,
		Alternatives:     req.Alternatives,
		Tags:             req.Tags,
		Source:           req.Source,
		SourceURL:        req.SourceURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("update library entry error: invalid fields", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid exercise fields", err)
		case errors.Is(err, errorvalues.ErrEntryNotFound):
			logger.Error("update library entry error: unexist entry")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "exercise doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("update library entry error: entry has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "exercise doesn't exist", nil)
		default:
			logger.Error("update library entry error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating exercise", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"success":  true,
		"exercise": entry,
	})
	logger.Info("library entry updated")
}

func (s *Server) DeleteLibraryEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("delete library entry error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("delete library entry error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid exercise id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.libraryService.DeleteEntry(ctx, uid, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEntryNotFound):
			logger.Error("delete library entry error: unexist entry")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "exercise doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("delete library entry error: entry has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "exercise doesn't exist", nil)
		default:
			logger.Error("delete library entry error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting exercise", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"success": true})
	logger.Info("library entry deleted")
}
