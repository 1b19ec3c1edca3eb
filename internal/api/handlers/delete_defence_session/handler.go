package delete_defence_session

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

// Handle DELETE /api/v1/defence-sessions/{id}
// Слоты сессии удаляются вместе с ней
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /defence-sessions/{id} - Invalid defence session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, defenceSessions.ErrDefenceSessionNotFound):
			h.logger.Warn("DELETE /defence-sessions/{id} - Defence session not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /defence-sessions/{id} - Failed to delete defence session: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /defence-sessions/{id} - Defence session deleted: id=%d", id)
	handlers.RespondNoContent(w)
}
