package get_defence_sessions

import (
	"context"

	"github.com/m04kA/SMC-DefenceBookingService/internal/service/defence_sessions/models"
)

type DefenceSessionService interface {
	GetAll(ctx context.Context) ([]*models.DefenceSessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
