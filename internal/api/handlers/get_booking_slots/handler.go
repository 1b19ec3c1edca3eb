package get_booking_slots

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

// Handle GET /api/v1/booking-slots
// Query params: defenceSessionId (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	defenceSessionID, err := handlers.ParseInt64Query(r, "defenceSessionId")
	if err != nil {
		h.logger.Warn("GET /booking-slots - Invalid defence session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDefenceSessionID)
		return
	}

	slots, err := h.service.GetByDefenceSessionID(r.Context(), defenceSessionID)
	if err != nil {
		switch {
		case errors.Is(err, bookingSlots.ErrBookingSlotsNotFound):
			h.logger.Warn("GET /booking-slots - Slots not found: defence_session_id=%d", defenceSessionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /booking-slots - Failed to get slots: defence_session_id=%d, error=%v",
				defenceSessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booking-slots - Slots retrieved: defence_session_id=%d, count=%d", defenceSessionID, len(slots))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(slots))
}
