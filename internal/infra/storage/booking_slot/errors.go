package booking_slot

import "errors"

var (
	// ErrBookingSlotNotFound возвращается, когда слот не найден
	ErrBookingSlotNotFound = errors.New("booking_slot.repository: booking slot not found")

	// ErrBookingSlotsNotFound возвращается, когда у сессии нет слотов
	ErrBookingSlotsNotFound = errors.New("booking_slot.repository: booking slots not found")

	// ErrSlotAlreadyBooked возвращается, когда слот занят конкурентной транзакцией
	ErrSlotAlreadyBooked = errors.New("booking_slot.repository: booking slot already booked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking_slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking_slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking_slot.repository: failed to scan row")
)
