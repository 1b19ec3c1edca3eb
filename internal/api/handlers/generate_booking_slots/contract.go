package generate_booking_slots

import (
	"context"

	generateBookingSlots "github.com/m04kA/SMC-DefenceBookingService/internal/usecase/generate_booking_slots"
)

type GenerateBookingSlotsUseCase interface {
	Execute(ctx context.Context, req *generateBookingSlots.Request) (*generateBookingSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
