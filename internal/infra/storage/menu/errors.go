package menu

import "errors"

var (
	// ErrItemNotFound возвращается, когда блюдо карты не найдено
	ErrItemNotFound = errors.New("menu.repository: menu item not found")

	// ErrDailyMenuNotFound возвращается, когда запись меню дня отсутствует
	ErrDailyMenuNotFound = errors.New("menu.repository: daily menu not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("menu.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("menu.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("menu.repository: failed to scan row")
)
