package create_hotel_reservation

import "errors"

var (
	// ErrRoomNotFound возвращается, когда категория номеров не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrInvalidDateRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")

	// ErrTooManyGuests возвращается, когда число гостей превышает вместимость номера
	ErrTooManyGuests = errors.New("party size exceeds room capacity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
