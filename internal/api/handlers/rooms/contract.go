package rooms

import (
	"context"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// RoomsService интерфейс сервиса категорий номеров
type RoomsService interface {
	List(ctx context.Context, onlyVisible bool) ([]*domain.Room, error)
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	Update(ctx context.Context, id int64, room *domain.Room) (*domain.Room, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
