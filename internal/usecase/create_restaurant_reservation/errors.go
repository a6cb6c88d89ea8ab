package create_restaurant_reservation

import "errors"

var (
	// ErrRestaurantClosed возвращается, когда ресторан закрыт в указанную дату
	ErrRestaurantClosed = errors.New("restaurant is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда запрошенное время не входит
	// в список слотов этого дня
	ErrInvalidTimeSlot = errors.New("requested time is not an offered slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
