package api_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/granger49/Protocol/internal/api"
	errorvalues "github.com/granger49/Protocol/internal/error_values"
	"github.com/granger49/Protocol/internal/service"
	"github.com/granger49/Protocol/internal/service/mocks"
	"github.com/granger49/Protocol/pkg/entity"
)

func withRouteParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func sampleWeek() entity.WeekSchedule {
	return entity.WeekSchedule{
		Monday: entity.DaySchedule{
			Name: "Lower Body",
			Sections: entity.DaySections{
				Strength: []string{"Back Squat", "Romanian Deadlift"},
			},
		},
		Thursday: entity.DaySchedule{
			Name: "Upper Body",
			Sections: entity.DaySections{
				Strength: []string{"Bench Press"},
			},
		},
	}
}

func TestGetTemplates(t *testing.T) {
	ctrl := gomock.NewController(t)
	tService := mocks.NewMockTemplateServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		TemplateService: tService,
	})
	templates := []*entity.Template{
		{
			ID:       uuid.New(),
			UserID:   userID,
			Name:     "current block",
			Schedule: sampleWeek(),
			IsActive: true,
		},
		{
			ID:       uuid.New(),
			UserID:   userID,
			Name:     "deload week",
			Schedule: sampleWeek(),
		},
	}
	testCases := []struct {
		ExpectedCode  int
		MockPrepFunc  func()
		ExpectedCount int
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				tService.EXPECT().ListTemplates(gomock.Any(), userID).Return(templates, nil)
			},
			ExpectedCount: 2,
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				tService.EXPECT().ListTemplates(gomock.Any(), userID).Return(nil, errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/templates", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.GetTemplates(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		if rr.Result().StatusCode == http.StatusOK {
			var resp api.GetTemplatesResponse
			err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp)
			require.NoError(t, err)
			assert.Equal(t, tc.ExpectedCount, len(resp.Templates))
		}
	}
}

func TestCreateTemplateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	tService := mocks.NewMockTemplateServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		TemplateService: tService,
	})
	template := api.CreateTemplateRequest{
		Name:     "current block",
		Schedule: sampleWeek(),
	}
	body, err := sonic.ConfigDefault.Marshal(template)
	require.NoError(t, err)
	templateID := uuid.New()
	expectedReq := service.CreateTemplateRequest{
		Name:     template.Name,
		Schedule: template.Schedule,
	}

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				tService.EXPECT().CreateTemplate(gomock.Any(), userID, &expectedReq).Return(&entity.Template{
					ID:        templateID,
					UserID:    userID,
					Name:      template.Name,
					Schedule:  template.Schedule,
					CreatedBy: "user",
					Version:   1,
					CreatedAt: time.Now(),
					UpdatedAt: time.Now(),
				}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				tService.EXPECT().CreateTemplate(gomock.Any(), userID, &expectedReq).Return(nil, errorvalues.ErrValidation)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				tService.EXPECT().CreateTemplate(gomock.Any(), userID, &expectedReq).Return(nil, errorvalues.ErrUserNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				tService.EXPECT().CreateTemplate(gomock.Any(), userID, &expectedReq).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/templates", tc.Body)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.CreateTemplate(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestGetActiveTemplateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	tService := mocks.NewMockTemplateServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		TemplateService: tService,
	})
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				tService.EXPECT().GetActiveTemplate(gomock.Any(), userID).Return(&entity.Template{
					ID:       uuid.New(),
					UserID:   userID,
					Name:     "current block",
					Schedule: sampleWeek(),
					IsActive: true,
				}, nil)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				tService.EXPECT().GetActiveTemplate(gomock.Any(), userID).Return(nil, errorvalues.ErrTemplateNotFound)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				tService.EXPECT().GetActiveTemplate(gomock.Any(), userID).Return(nil, errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/templates/active", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.GetActiveTemplate(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestActivateTemplateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	tService := mocks.NewMockTemplateServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		TemplateService: tService,
	})
	templateID := uuid.New()
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		PathID       string
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				tService.EXPECT().ActivateTemplate(gomock.Any(), userID, templateID).Return(&entity.Template{
					ID:       templateID,
					UserID:   userID,
					Name:     "current block",
					Schedule: sampleWeek(),
					IsActive: true,
				}, nil)
			},
			PathID: templateID.String(),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				tService.EXPECT().ActivateTemplate(gomock.Any(), userID, templateID).Return(nil, errorvalues.ErrTemplateNotFound)
			},
			PathID: templateID.String(),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				tService.EXPECT().ActivateTemplate(gomock.Any(), userID, templateID).Return(nil, errors.New("service error"))
			},
			PathID: templateID.String(),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			PathID:       "not-an-id",
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/api/v1/templates/"+tc.PathID+"/activate", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r = withRouteParam(r, "id", tc.PathID)
		serv.ActivateTemplate(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestDeleteTemplateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	tService := mocks.NewMockTemplateServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		TemplateService: tService,
	})
	templateID := uuid.New()
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				tService.EXPECT().DeleteTemplate(gomock.Any(), userID, templateID).Return(nil)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				tService.EXPECT().DeleteTemplate(gomock.Any(), userID, templateID).Return(errorvalues.ErrTemplateNotFound)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				tService.EXPECT().DeleteTemplate(gomock.Any(), userID, templateID).Return(errorvalues.ErrWrongOwner)
			},
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				tService.EXPECT().DeleteTemplate(gomock.Any(), userID, templateID).Return(errorvalues.ErrTemplateActive)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				tService.EXPECT().DeleteTemplate(gomock.Any(), userID, templateID).Return(errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/v1/templates/"+templateID.String(), nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r = withRouteParam(r, "id", templateID.String())
		serv.DeleteTemplate(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}
