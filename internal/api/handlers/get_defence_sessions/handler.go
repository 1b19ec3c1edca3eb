package get_defence_sessions

import (
	"net/http"

	"github.com/m04kA/SMC-DefenceBookingService/internal/api/handlers"
)

type Handler struct {
	service DefenceSessionService
	logger  Logger
}

func NewHandler(service DefenceSessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/defence-sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /defence-sessions - Failed to get defence sessions: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /defence-sessions - Defence sessions retrieved: count=%d", len(sessions))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(sessions))
}
