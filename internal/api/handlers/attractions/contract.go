package attractions

import (
	"context"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// ContentService интерфейс сервиса достопримечательностей
type ContentService interface {
	ListAttractions(ctx context.Context, onlyVisible bool) ([]*domain.Attraction, error)
	CreateAttraction(ctx context.Context, a *domain.Attraction) (*domain.Attraction, error)
	UpdateAttraction(ctx context.Context, id int64, a *domain.Attraction) (*domain.Attraction, error)
	DeleteAttraction(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
