package generate_booking_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	generateBookingSlots "github.com/m04kA/SMC-DefenceBookingService/internal/usecase/generate_booking_slots"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/logger"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/types"
)

type stubUseCase struct {
	resp *generateBookingSlots.Response
	err  error
	got  *generateBookingSlots.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *generateBookingSlots.Request) (*generateBookingSlots.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(uc *stubUseCase, query string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/booking-slots/generate-booking-slots?"+query, nil)
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{resp: &generateBookingSlots.Response{
		DefenceSessionID: 1,
		Slots: []generateBookingSlots.BookingSlot{
			{ID: 1, DefenceSessionID: 1, StartTime: types.MustTimeOfDay(13, 0, 0, 0), EndTime: types.MustTimeOfDay(13, 15, 0, 0)},
			{ID: 2, DefenceSessionID: 1, StartTime: types.MustTimeOfDay(13, 15, 0, 0), EndTime: types.MustTimeOfDay(13, 30, 0, 0)},
		},
	}}

	rec := serve(uc, "defenceSessionId=1&bookingSlotsCount=2")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, &generateBookingSlots.Request{DefenceSessionID: 1, BookingSlotsCount: 2}, uc.got)

	var body []BookingSlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "13:15:00", body[1].StartTime)
	assert.False(t, body[1].IsBooked)
	assert.Nil(t, body[1].UserID)
}

func TestHandle_BadQuery(t *testing.T) {
	for _, query := range []string{"", "defenceSessionId=x&bookingSlotsCount=2", "defenceSessionId=1", "defenceSessionId=1&bookingSlotsCount=two"} {
		uc := &stubUseCase{}
		rec := serve(uc, query)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
		assert.Nil(t, uc.got)
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{generateBookingSlots.ErrInvalidSlotsCount, http.StatusBadRequest},
		{generateBookingSlots.ErrSlotTooShort, http.StatusBadRequest},
		{generateBookingSlots.ErrDefenceSessionNotFound, http.StatusNotFound},
		{generateBookingSlots.ErrBookingSlotsAlreadyExist, http.StatusConflict},
		{generateBookingSlots.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		uc := &stubUseCase{err: fmt.Errorf("%w: wrapped", tc.err)}
		rec := serve(uc, "defenceSessionId=1&bookingSlotsCount=0")
		assert.Equal(t, tc.code, rec.Code, tc.err.Error())
		assert.Contains(t, rec.Body.String(), fmt.Sprintf(`"code":%d`, tc.code))
	}
}
