package choose_booking_slot

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("choose_booking_slot: user not found")

	// ErrBookingSlotNotFound возвращается, когда слот не найден
	ErrBookingSlotNotFound = errors.New("choose_booking_slot: booking slot not found")

	// ErrUserNotStudent возвращается, когда слот пытается занять не студент
	ErrUserNotStudent = errors.New("choose_booking_slot: user is not a student")

	// ErrSlotAlreadyBooked возвращается, когда слот уже занят
	ErrSlotAlreadyBooked = errors.New("choose_booking_slot: booking slot is already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("choose_booking_slot: internal error")
)

// Причины отказа для метрик
const (
	reasonNotStudent    = "not_student"
	reasonAlreadyBooked = "already_booked"
)
