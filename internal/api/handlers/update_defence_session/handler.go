package update_defence_session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DefenceBookingService/internal/api/handlers"
	defenceSessions "github.com/m04kA/SMC-DefenceBookingService/internal/service/defence_sessions"
)

const (
	msgInvalidID            = "некорректный ID сессии защиты"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime          = "некорректный формат времени, ожидается HH:MM"
	msgInvalidTimeRange     = "время начала должно быть раньше времени окончания"
	msgInvalidInput         = "некорректные данные сессии защиты"
	msgNotFound             = "сессия защиты не найдена"
	msgTaskCategoryNotFound = "категория задач не найдена"
	msgScheduleConflict     = "сессия пересекается с другой сессией в эту дату"
	msgSlotsOutsideSession  = "у сессии есть слоты, которые окажутся вне нового времени"
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

// Handle PUT /api/v1/defence-sessions/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /defence-sessions/{id} - Invalid defence session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateDefenceSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /defence-sessions/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /defence-sessions/{id} - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidDate) {
			handlers.RespondBadRequest(w, msgInvalidDate)
		} else {
			handlers.RespondBadRequest(w, msgInvalidTime)
		}
		return
	}

	result, err := h.service.Update(r.Context(), id, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, defenceSessions.ErrDefenceSessionNotFound):
			h.logger.Warn("PUT /defence-sessions/{id} - Defence session not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, defenceSessions.ErrInvalidTimeRange):
			h.logger.Warn("PUT /defence-sessions/{id} - Invalid time range: id=%d, %s-%s", id, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, defenceSessions.ErrInvalidInput):
			h.logger.Warn("PUT /defence-sessions/{id} - Invalid input: id=%d, %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, defenceSessions.ErrTaskCategoryNotFound):
			h.logger.Warn("PUT /defence-sessions/{id} - Task category not found: task_category_id=%d", req.TaskCategoryID)
			handlers.RespondNotFound(w, msgTaskCategoryNotFound)

		case errors.Is(err, defenceSessions.ErrScheduleConflict):
			h.logger.Warn("PUT /defence-sessions/{id} - Schedule conflict: id=%d, date=%s, time=%s-%s",
				id, req.Date, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgScheduleConflict)

		case errors.Is(err, defenceSessions.ErrBookingSlotsOutsideSession):
			h.logger.Warn("PUT /defence-sessions/{id} - Booking slots outside session: id=%d, date=%s, time=%s-%s",
				id, req.Date, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgSlotsOutsideSession)

		default:
			h.logger.Error("PUT /defence-sessions/{id} - Failed to update defence session: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /defence-sessions/{id} - Defence session updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
