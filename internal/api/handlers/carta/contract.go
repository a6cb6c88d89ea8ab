package carta

import (
	"context"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// MenuService интерфейс сервиса карты ресторана
type MenuService interface {
	ListMenuItems(ctx context.Context) ([]*domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int64, item *domain.MenuItem) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
