package create_defence_session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	defenceSessions "github.com/m04kA/SMC-DefenceBookingService/internal/service/defence_sessions"
	"github.com/m04kA/SMC-DefenceBookingService/internal/service/defence_sessions/models"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/logger"
)

type stubService struct {
	err error
	got *models.DefenceSessionRequest
}

func (s *stubService) Create(_ context.Context, req *models.DefenceSessionRequest) (*models.DefenceSessionResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.DefenceSessionResponse{
		ID:             7,
		Description:    req.Description,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		TaskCategoryID: req.TaskCategoryID,
	}, nil
}

const validBody = `{"description":"Курсовые","date":"2025-06-10","startTime":"10:00","endTime":"12:00","taskCategoryId":1}`

func serve(svc *stubService, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/defence-sessions", strings.NewReader(body))
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, svc.got)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), svc.got.Date)
	assert.Equal(t, "10:00:00", svc.got.StartTime.String())

	var body DefenceSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(7), body.ID)
	assert.Equal(t, "2025-06-10", body.Date)
	assert.Equal(t, "12:00:00", body.EndTime)
}

func TestHandle_BadRequest(t *testing.T) {
	bodies := []string{
		`{`,
		`{"date":"2025-06-10","startTime":"10:00","endTime":"12:00"}`,
		`{"date":"10.06.2025","startTime":"10:00","endTime":"12:00","taskCategoryId":1}`,
		`{"date":"2025-06-10","startTime":"25:00","endTime":"12:00","taskCategoryId":1}`,
	}
	for _, body := range bodies {
		svc := &stubService{}
		rec := serve(svc, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Nil(t, svc.got)
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{defenceSessions.ErrInvalidTimeRange, http.StatusBadRequest},
		{defenceSessions.ErrInvalidInput, http.StatusBadRequest},
		{defenceSessions.ErrTaskCategoryNotFound, http.StatusNotFound},
		{defenceSessions.ErrScheduleConflict, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := serve(&stubService{err: tc.err}, validBody)
		assert.Equal(t, tc.code, rec.Code, tc.err.Error())
	}
}
