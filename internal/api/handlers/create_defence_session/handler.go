package create_defence_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DefenceBookingService/internal/api/handlers"
	defenceSessions "github.com/m04kA/SMC-DefenceBookingService/internal/service/defence_sessions"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime          = "некорректный формат времени, ожидается HH:MM"
	msgInvalidTimeRange     = "время начала должно быть раньше времени окончания"
	msgInvalidInput         = "некорректные данные сессии защиты"
	msgTaskCategoryNotFound = "категория задач не найдена"
	msgScheduleConflict     = "сессия пересекается с другой сессией в эту дату"
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

// Handle POST /api/v1/defence-sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateDefenceSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /defence-sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /defence-sessions - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidDate) {
			handlers.RespondBadRequest(w, msgInvalidDate)
		} else {
			handlers.RespondBadRequest(w, msgInvalidTime)
		}
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, defenceSessions.ErrInvalidTimeRange):
			h.logger.Warn("POST /defence-sessions - Invalid time range: %s-%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, defenceSessions.ErrInvalidInput):
			h.logger.Warn("POST /defence-sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, defenceSessions.ErrTaskCategoryNotFound):
			h.logger.Warn("POST /defence-sessions - Task category not found: task_category_id=%d", req.TaskCategoryID)
			handlers.RespondNotFound(w, msgTaskCategoryNotFound)

		case errors.Is(err, defenceSessions.ErrScheduleConflict):
			h.logger.Warn("POST /defence-sessions - Schedule conflict: date=%s, time=%s-%s", req.Date, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgScheduleConflict)

		default:
			h.logger.Error("POST /defence-sessions - Failed to create defence session: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /defence-sessions - Defence session created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
