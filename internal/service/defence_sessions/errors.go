package defence_sessions

import "errors"

var (
	// ErrDefenceSessionNotFound возвращается, когда сессия защит не найдена
	ErrDefenceSessionNotFound = errors.New("defence session not found")

	// ErrTaskCategoryNotFound возвращается, когда категория задач не найдена
	ErrTaskCategoryNotFound = errors.New("task category not found")

	// ErrInvalidTimeRange возвращается, когда время начала не раньше времени окончания
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrScheduleConflict возвращается при пересечении с другой сессией в ту же дату
	ErrScheduleConflict = errors.New("defence session overlaps another session")

	// ErrBookingSlotsOutsideSession возвращается, когда изменение даты или времени оставляет слоты вне сессии
	ErrBookingSlotsOutsideSession = errors.New("defence session change leaves booking slots outside the session")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
