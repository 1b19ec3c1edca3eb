package delete_defence_session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	defenceSessions "github.com/m04kA/SMC-DefenceBookingService/internal/service/defence_sessions"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/logger"
)

type stubService struct {
	err error
	got int64
}

func (s *stubService) Delete(_ context.Context, id int64) error {
	s.got = id
	return s.err
}

func serve(svc *stubService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/defence-sessions/{id}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, path, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &stubService{}
	rec := serve(svc, "/api/v1/defence-sessions/4")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(4), svc.got)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&stubService{}, "/api/v1/defence-sessions/x").Code)
	assert.Equal(t, http.StatusNotFound, serve(&stubService{err: defenceSessions.ErrDefenceSessionNotFound}, "/api/v1/defence-sessions/4").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&stubService{err: errors.New("boom")}, "/api/v1/defence-sessions/4").Code)
}
