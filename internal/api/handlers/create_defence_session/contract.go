package create_defence_session

import (
	"context"

	"github.com/m04kA/SMC-DefenceBookingService/internal/service/defence_sessions/models"
)

type DefenceSessionService interface {
	Create(ctx context.Context, req *models.DefenceSessionRequest) (*models.DefenceSessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
