package events

import (
	"context"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// ContentService интерфейс сервиса событий
type ContentService interface {
	ListEvents(ctx context.Context, onlyVisible bool) ([]*domain.Event, error)
	CreateEvent(ctx context.Context, e *domain.Event) (*domain.Event, error)
	UpdateEvent(ctx context.Context, id int64, e *domain.Event) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
