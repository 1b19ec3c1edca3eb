package defence_session

import "errors"

var (
	// ErrDefenceSessionNotFound возвращается, когда сессия защиты не найдена
	ErrDefenceSessionNotFound = errors.New("defence_session.repository: defence session not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("defence_session.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("defence_session.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("defence_session.repository: failed to scan row")
)
