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

type CreateTemplateRequest struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Schedule    entity.WeekSchedule `json:"schedule"`
	IsActive    bool                `json:"is_active"`
	CreatedBy   string              `json:"created_by"`
}

type GetTemplatesResponse struct {
	Templates []*entity.Template `json:"templates"`
}

func (s *Server) GetTemplates(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get templates error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	templates, err := s.templateService.ListTemplates(ctx, uid)
	if err != nil {
		logger.Error("getting templates list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting templates list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetTemplatesResponse{
		Templates: templates,
	})
	logger.Info("templates provided")
}

func (s *Server) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create template error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateTemplateRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create template error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	template, err := s.templateService.CreateTemplate(ctx, uid, &service.CreateTemplateRequest{
		Name:        req.Name,
		Description: req.Description,
		Schedule:    req.Schedule,
		IsActive:    req.IsActive,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create template error: invalid fields", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid template fields", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create template error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create template: user doesn't exists", nil)
		default:
			logger.Error("create template error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating template", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"success":  true,
		"template": template,
	})
	logger.Info("template created")
}

func (s *Server) GetActiveTemplate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get active template error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	template, err := s.templateService.GetActiveTemplate(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTemplateNotFound) {
			logger.Error("get active template error: no active template")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no active template", nil)
			return
		}
		logger.Error("get active template error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting active template", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"template": template})
	logger.Info("active template provided")
}

func (s *Server) ActivateTemplate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("activate template error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("activate template error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid template id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	template, err := s.templateService.ActivateTemplate(ctx, uid, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTemplateNotFound) {
			logger.Error("activate template error: unexist template")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "template doesn't exist", nil)
			return
		}
		logger.Error("activate template error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while activating template", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"success":  true,
		"template": template,
	})
	logger.Info("template activated")
}

func (s *Server) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("template deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("template deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid template id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.templateService.DeleteTemplate(ctx, uid, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrTemplateNotFound):
			logger.Error("template deletion error: unexist template")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "template doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("template deletion error: template has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "template doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrTemplateActive):
			logger.Error("template deletion error: attempt to delete active template")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "cannot delete active template, activate another template first", nil)
		default:
			logger.Error("template deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting template", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"success": true})
	logger.Info("template deleted")
}
