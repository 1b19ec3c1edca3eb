package get_booking_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingSlots "github.com/m04kA/SMC-DefenceBookingService/internal/service/booking_slots"
	"github.com/m04kA/SMC-DefenceBookingService/internal/service/booking_slots/models"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/logger"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/ptr"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/types"
)

type stubService struct {
	slots []*models.BookingSlotResponse
	err   error
}

func (s *stubService) GetByDefenceSessionID(_ context.Context, _ int64) ([]*models.BookingSlotResponse, error) {
	return s.slots, s.err
}

func serve(svc *stubService, query string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/booking-slots?"+query, nil)
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &stubService{slots: []*models.BookingSlotResponse{
		{ID: 1, DefenceSessionID: 3, StartTime: types.MustTimeOfDay(9, 0, 0, 0), EndTime: types.MustTimeOfDay(9, 20, 0, 0)},
		{ID: 2, DefenceSessionID: 3, StartTime: types.MustTimeOfDay(9, 20, 0, 0), EndTime: types.MustTimeOfDay(9, 40, 0, 0),
			IsBooked: true, UserID: ptr.Ptr(int64(8))},
	}}

	rec := serve(svc, "defenceSessionId=3")
	require.Equal(t, http.StatusOK, rec.Code)

	var body []BookingSlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Nil(t, body[0].UserID)
	assert.Equal(t, int64(8), *body[1].UserID)
	assert.Equal(t, "09:40:00", body[1].EndTime)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&stubService{}, "defenceSessionId=").Code)
	assert.Equal(t, http.StatusNotFound, serve(&stubService{err: bookingSlots.ErrBookingSlotsNotFound}, "defenceSessionId=3").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&stubService{err: errors.New("boom")}, "defenceSessionId=3").Code)
}
