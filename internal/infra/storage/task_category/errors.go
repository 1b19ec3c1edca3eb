package task_category

import "errors"

var (
	// ErrTaskCategoryNotFound возвращается, когда категория задач не найдена
	ErrTaskCategoryNotFound = errors.New("task_category.repository: task category not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("task_category.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("task_category.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("task_category.repository: failed to scan row")
)
