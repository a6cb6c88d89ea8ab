package content

import "errors"

var (
	// ErrAttractionNotFound возвращается, когда достопримечательность не найдена
	ErrAttractionNotFound = errors.New("content.repository: attraction not found")

	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("content.repository: event not found")

	// ErrImageNotFound возвращается, когда изображение галереи не найдено
	ErrImageNotFound = errors.New("content.repository: gallery image not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("content.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("content.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("content.repository: failed to scan row")
)
