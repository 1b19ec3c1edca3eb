package generate_booking_slots

import "errors"

var (
	// ErrInvalidSlotsCount возвращается, когда количество слотов не положительное или больше допустимого
	ErrInvalidSlotsCount = errors.New("generate_booking_slots: booking slots count is out of range")

	// ErrSlotTooShort возвращается, когда окно сессии слишком короткое для такого количества слотов
	ErrSlotTooShort = errors.New("generate_booking_slots: booking slot duration is too short")

	// ErrDefenceSessionNotFound возвращается, когда сессия защиты не найдена
	ErrDefenceSessionNotFound = errors.New("generate_booking_slots: defence session not found")

	// ErrBookingSlotsAlreadyExist возвращается, когда у сессии уже есть слоты
	ErrBookingSlotsAlreadyExist = errors.New("generate_booking_slots: booking slots already exist")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_booking_slots: internal error")
)
