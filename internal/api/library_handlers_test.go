package api_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
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

func TestGetLibrary(t *testing.T) {
	ctrl := gomock.NewController(t)
	lService := mocks.NewMockLibraryServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		LibraryService: lService,
	})
	owner := userID
	entries := []entity.LibraryEntry{
		{
			ID:       uuid.New(),
			Name:     "Plank",
			Category: "stability",
			IsActive: true,
		},
		{
			ID:       uuid.New(),
			UserID:   &owner,
			Name:     "Back Squat",
			Category: "strength",
			IsActive: true,
		},
	}
	testCases := []struct {
		ExpectedCode  int
		MockPrepFunc  func()
		Category      string
		ExpectedCount int
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				lService.EXPECT().ListEntries(gomock.Any(), userID, "").Return(entries, nil)
			},
			ExpectedCount: 2,
		},
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				lService.EXPECT().ListEntries(gomock.Any(), userID, "strength").Return(entries[1:], nil)
			},
			Category:      "strength",
			ExpectedCount: 1,
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				lService.EXPECT().ListEntries(gomock.Any(), userID, "").Return(nil, errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/exercises/library", nil)
		if tc.Category != "" {
			q := r.URL.Query()
			q.Add("category", tc.Category)
			r.URL.RawQuery = q.Encode()
		}
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.GetLibrary(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		if rr.Result().StatusCode == http.StatusOK {
			var resp api.GetLibraryResponse
			err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp)
			require.NoError(t, err)
			assert.Equal(t, tc.ExpectedCount, len(resp.Exercises))
		}
	}
}

func TestCreateLibraryEntryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	lService := mocks.NewMockLibraryServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		LibraryService: lService,
	})
	entry := api.CreateEntryRequest{
		Name:     "Calf Raise",
		Category: "rehab",
		Sets:     3,
		Reps:     "15",
		RestSec:  60,
	}
	body, err := sonic.ConfigDefault.Marshal(entry)
	require.NoError(t, err)
	expectedReq := service.CreateEntryRequest{
		Name:     entry.Name,
		Category: entry.Category,
		Sets:     entry.Sets,
		Reps:     entry.Reps,
		RestSec:  entry.RestSec,
	}
	owner := userID

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				lService.EXPECT().CreateEntry(gomock.Any(), userID, &expectedReq).Return(&entity.LibraryEntry{
					ID:       uuid.New(),
					UserID:   &owner,
					Name:     entry.Name,
					Category: entry.Category,
					Sets:     entry.Sets,
					Reps:     entry.Reps,
					RestSec:  entry.RestSec,
					IsActive: true,
				}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				lService.EXPECT().CreateEntry(gomock.Any(), userID, &expectedReq).Return(nil, errorvalues.ErrValidation)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				lService.EXPECT().CreateEntry(gomock.Any(), userID, &expectedReq).Return(nil, errorvalues.ErrUserNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				lService.EXPECT().CreateEntry(gomock.Any(), userID, &expectedReq).Return(nil, errors.New("service error"))
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
		r := httptest.NewRequest(http.MethodPost, "/api/v1/exercises/library", tc.Body)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.CreateLibraryEntry(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestUpdateLibraryEntryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	lService := mocks.NewMockLibraryServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		LibraryService: lService,
	})
	entryID := uuid.New()
	newCue := "slow eccentric"
	body, err := sonic.ConfigDefault.Marshal(api.UpdateEntryRequest{
		FormCue: &newCue,
	})
	require.NoError(t, err)
	owner := userID

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		PathID       string
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				lService.EXPECT().UpdateEntry(gomock.Any(), userID, entryID, &service.UpdateEntryRequest{
					FormCue: &newCue,
				}).Return(&entity.LibraryEntry{
					ID:       entryID,
					UserID:   &owner,
					Name:     "Calf Raise",
					Category: "rehab",
					FormCue:  newCue,
					IsActive: true,
				}, nil)
			},
			PathID: entryID.String(),
			Body:   bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				lService.EXPECT().UpdateEntry(gomock.Any(), userID, entryID, &service.UpdateEntryRequest{
					FormCue: &newCue,
				}).Return(nil, errorvalues.ErrValidation)
			},
			PathID: entryID.String(),
			Body:   bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				lService.EXPECT().UpdateEntry(gomock.Any(), userID, entryID, &service.UpdateEntryRequest{
					FormCue: &newCue,
				}).Return(nil, errorvalues.ErrEntryNotFound)
			},
			PathID: entryID.String(),
			Body:   bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				lService.EXPECT().UpdateEntry(gomock.Any(), userID, entryID, &service.UpdateEntryRequest{
					FormCue: &newCue,
				}).Return(nil, errorvalues.ErrWrongOwner)
			},
			PathID: entryID.String(),
			Body:   bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				lService.EXPECT().UpdateEntry(gomock.Any(), userID, entryID, &service.UpdateEntryRequest{
					FormCue: &newCue,
				}).Return(nil, errors.New("service error"))
			},
			PathID: entryID.String(),
			Body:   bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			PathID:       "not-an-id",
			Body:         bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			PathID:       entryID.String(),
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/api/v1/exercises/library/"+tc.PathID, tc.Body)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r = withRouteParam(r, "id", tc.PathID)
		serv.UpdateLibraryEntry(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestDeleteLibraryEntryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	lService := mocks.NewMockLibraryServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		LibraryService: lService,
	})
	entryID := uuid.New()
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		PathID       string
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				lService.EXPECT().DeleteEntry(gomock.Any(), userID, entryID).Return(nil)
			},
			PathID: entryID.String(),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				lService.EXPECT().DeleteEntry(gomock.Any(), userID, entryID).Return(errorvalues.ErrEntryNotFound)
			},
			PathID: entryID.String(),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				lService.EXPECT().DeleteEntry(gomock.Any(), userID, entryID).Return(errorvalues.ErrWrongOwner)
			},
			PathID: entryID.String(),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				lService.EXPECT().DeleteEntry(gomock.Any(), userID, entryID).Return(errors.New("service error"))
			},
			PathID: entryID.String(),
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
		r := httptest.NewRequest(http.MethodDelete, "/api/v1/exercises/library/"+tc.PathID, nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r = withRouteParam(r, "id", tc.PathID)
		serv.DeleteLibraryEntry(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}
