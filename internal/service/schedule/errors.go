package schedule

import "errors"

var (
	// ErrInvalidDayOfWeek возвращается, когда день недели вне диапазона [0, 6]
	ErrInvalidDayOfWeek = errors.New("day of week must be in range [0, 6]")

	// ErrInvalidSlot возвращается, когда слот не соответствует формату HH:MM
	ErrInvalidSlot = errors.New("slot must be in HH:MM format")

	// ErrDayNotFound возвращается, когда день отсутствует в таблице расписания
	ErrDayNotFound = errors.New("schedule day not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
