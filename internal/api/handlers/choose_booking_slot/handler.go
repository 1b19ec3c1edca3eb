package choose_booking_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DefenceBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DefenceBookingService/internal/api/middleware"
	chooseBookingSlot "github.com/m04kA/SMC-DefenceBookingService/internal/usecase/choose_booking_slot"
)

const (
	msgInvalidUserID        = "некорректный ID пользователя"
	msgInvalidBookingSlotID = "некорректный ID слота"
	msgUserNotFound         = "пользователь не найден"
	msgBookingSlotNotFound  = "слот не найден"
	msgUserNotStudent       = "занимать слоты могут только студенты"
	msgSlotAlreadyBooked    = "слот уже занят"
)

type Handler struct {
	useCase ChooseBookingSlotUseCase
	logger  Logger
}

func NewHandler(useCase ChooseBookingSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/booking-slots/choose-booking-slot
// Query params: userId (required), bookingSlotId (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.ParseInt64Query(r, "userId")
	if err != nil {
		h.logger.Warn("PUT /booking-slots/choose-booking-slot - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	bookingSlotID, err := handlers.ParseInt64Query(r, "bookingSlotId")
	if err != nil {
		h.logger.Warn("PUT /booking-slots/choose-booking-slot - Invalid booking slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingSlotID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &chooseBookingSlot.Request{
		UserID:        userID,
		BookingSlotID: bookingSlotID,
	})
	if err != nil {
		switch {
		case errors.Is(err, chooseBookingSlot.ErrUserNotFound):
			h.logger.Warn("PUT /booking-slots/choose-booking-slot - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, chooseBookingSlot.ErrBookingSlotNotFound):
			h.logger.Warn("PUT /booking-slots/choose-booking-slot - Booking slot not found: booking_slot_id=%d", bookingSlotID)
			handlers.RespondNotFound(w, msgBookingSlotNotFound)

		case errors.Is(err, chooseBookingSlot.ErrUserNotStudent):
			h.logger.Warn("PUT /booking-slots/choose-booking-slot - User is not a student: user_id=%d", userID)
			handlers.RespondForbidden(w, msgUserNotStudent)

		case errors.Is(err, chooseBookingSlot.ErrSlotAlreadyBooked):
			h.logger.Warn("PUT /booking-slots/choose-booking-slot - Slot already booked: booking_slot_id=%d, user_id=%d",
				bookingSlotID, userID)
			handlers.RespondConflict(w, msgSlotAlreadyBooked)

		default:
			h.logger.Error("PUT /booking-slots/choose-booking-slot - Failed to choose slot: booking_slot_id=%d, user_id=%d, error=%v",
				bookingSlotID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// слот может занять за студента другой пользователь, поэтому пишем в лог и автора запроса
	callerID, _ := middleware.GetUserID(r.Context())
	h.logger.Info("PUT /booking-slots/choose-booking-slot - Slot chosen: booking_slot_id=%d, user_id=%d, caller_id=%d",
		bookingSlotID, userID, callerID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
