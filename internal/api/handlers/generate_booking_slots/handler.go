package generate_booking_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DefenceBookingService/internal/api/handlers"
	generateBookingSlots "github.com/m04kA/SMC-DefenceBookingService/internal/usecase/generate_booking_slots"
)

const (
	msgInvalidDefenceSessionID = "некорректный ID сессии защиты"
	msgInvalidSlotsCount       = "количество слотов должно быть от 1 до 10000"
	msgSlotTooShort            = "окно сессии слишком короткое для такого количества слотов"
	msgDefenceSessionNotFound  = "сессия защиты не найдена"
	msgSlotsAlreadyExist       = "слоты для этой сессии уже созданы"
)

type Handler struct {
	useCase GenerateBookingSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateBookingSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking-slots/generate-booking-slots
// Query params: defenceSessionId (required), bookingSlotsCount (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	defenceSessionID, err := handlers.ParseInt64Query(r, "defenceSessionId")
	if err != nil {
		h.logger.Warn("POST /booking-slots/generate-booking-slots - Invalid defence session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDefenceSessionID)
		return
	}

	count, err := handlers.ParseIntQuery(r, "bookingSlotsCount")
	if err != nil {
		h.logger.Warn("POST /booking-slots/generate-booking-slots - Invalid slots count: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotsCount)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &generateBookingSlots.Request{
		DefenceSessionID:  defenceSessionID,
		BookingSlotsCount: count,
	})
	if err != nil {
		switch {
		case errors.Is(err, generateBookingSlots.ErrInvalidSlotsCount):
			h.logger.Warn("POST /booking-slots/generate-booking-slots - Invalid slots count: count=%d", count)
			handlers.RespondBadRequest(w, msgInvalidSlotsCount)

		case errors.Is(err, generateBookingSlots.ErrSlotTooShort):
			h.logger.Warn("POST /booking-slots/generate-booking-slots - Slot too short: defence_session_id=%d, count=%d",
				defenceSessionID, count)
			handlers.RespondBadRequest(w, msgSlotTooShort)

		case errors.Is(err, generateBookingSlots.ErrDefenceSessionNotFound):
			h.logger.Warn("POST /booking-slots/generate-booking-slots - Defence session not found: defence_session_id=%d",
				defenceSessionID)
			handlers.RespondNotFound(w, msgDefenceSessionNotFound)

		case errors.Is(err, generateBookingSlots.ErrBookingSlotsAlreadyExist):
			h.logger.Warn("POST /booking-slots/generate-booking-slots - Slots already exist: defence_session_id=%d",
				defenceSessionID)
			handlers.RespondConflict(w, msgSlotsAlreadyExist)

		default:
			h.logger.Error("POST /booking-slots/generate-booking-slots - Failed to generate slots: defence_session_id=%d, error=%v",
				defenceSessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-slots/generate-booking-slots - Slots generated: defence_session_id=%d, count=%d",
		defenceSessionID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
