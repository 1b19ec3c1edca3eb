package delete_booking_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DefenceBookingService/internal/api/handlers"
	bookingSlots "github.com/m04kA/SMC-DefenceBookingService/internal/service/booking_slots"
)

const (
	msgInvalidDefenceSessionID = "некорректный ID сессии защиты"
	msgNotFound                = "слоты для этой сессии не найдены"
)

type Handler struct {
	service BookingSlotService
	logger  Logger
}

func NewHandler(service BookingSlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/booking-slots/delete
// Query params: defenceSessionId (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	defenceSessionID, err := handlers.ParseInt64Query(r, "defenceSessionId")
	if err != nil {
		h.logger.Warn("DELETE /booking-slots/delete - Invalid defence session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDefenceSessionID)
		return
	}

	if err := h.service.RemoveByDefenceSessionID(r.Context(), defenceSessionID); err != nil {
		switch {
		case errors.Is(err, bookingSlots.ErrBookingSlotsNotFound):
			h.logger.Warn("DELETE /booking-slots/delete - Slots not found: defence_session_id=%d", defenceSessionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /booking-slots/delete - Failed to delete slots: defence_session_id=%d, error=%v",
				defenceSessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /booking-slots/delete - Slots deleted: defence_session_id=%d", defenceSessionID)
	handlers.RespondNoContent(w)
}
