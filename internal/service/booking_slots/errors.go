package booking_slots

import "errors"

var (
	// ErrBookingSlotsNotFound возвращается, когда у сессии нет слотов
	ErrBookingSlotsNotFound = errors.New("booking slots not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
