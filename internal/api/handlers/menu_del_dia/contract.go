package menu_del_dia

import (
	"context"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// MenuService интерфейс сервиса меню дня
type MenuService interface {
	GetDailyMenu(ctx context.Context) (*domain.DailyMenu, error)
	UpdateDailyMenu(ctx context.Context, menu *domain.DailyMenu) (*domain.DailyMenu, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
