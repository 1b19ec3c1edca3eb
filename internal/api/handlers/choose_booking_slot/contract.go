package choose_booking_slot

import (
	"context"

	chooseBookingSlot "github.com/m04kA/SMC-DefenceBookingService/internal/usecase/choose_booking_slot"
)

type ChooseBookingSlotUseCase interface {
	Execute(ctx context.Context, req *chooseBookingSlot.Request) (*chooseBookingSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
