package generate_booking_slots

import (
	"fmt"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
)

// validateRequest проверяет запрос до обращения к БД
func validateRequest(req *Request) error {
	if req.BookingSlotsCount <= 0 || req.BookingSlotsCount > domain.MaxBookingSlotsCount {
		return fmt.Errorf("%w: bookingSlotsCount=%d, max=%d",
			ErrInvalidSlotsCount, req.BookingSlotsCount, domain.MaxBookingSlotsCount)
	}
	return nil
}
