package get_defence_session

import (
	"context"

	"github.com/m04kA/SMC-DefenceBookingService/internal/service/defence_sessions/models"
)

type DefenceSessionService interface {
	GetByID(ctx context.Context, id int64) (*models.DefenceSessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
