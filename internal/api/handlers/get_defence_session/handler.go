package get_defence_session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DefenceBookingService/internal/api/handlers"
	defenceSessions "github.com/m04kA/SMC-DefenceBookingService/internal/service/defence_sessions"
)

const (
	msgInvalidID = "некорректный ID сессии защиты"
	msgNotFound  = "сессия защиты не найдена"
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

// Handle GET /api/v1/defence-sessions/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /defence-sessions/{id} - Invalid defence session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	session, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, defenceSessions.ErrDefenceSessionNotFound):
			h.logger.Warn("GET /defence-sessions/{id} - Defence session not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /defence-sessions/{id} - Failed to get defence session: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(session))
}
