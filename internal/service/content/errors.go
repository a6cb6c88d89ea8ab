package content

import "errors"

var (
	// ErrItemNotFound возвращается, когда блюдо карты не найдено
	ErrItemNotFound = errors.New("menu item not found")

	// ErrDailyMenuNotFound возвращается, когда меню дня отсутствует
	ErrDailyMenuNotFound = errors.New("daily menu not found")

	// ErrAttractionNotFound возвращается, когда достопримечательность не найдена
	ErrAttractionNotFound = errors.New("attraction not found")

	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("event not found")

	// ErrImageNotFound возвращается, когда изображение галереи не найдено
	ErrImageNotFound = errors.New("gallery image not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
