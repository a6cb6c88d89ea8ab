package compute_dashboard

import (
	"context"
	"time"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// RoomRepository интерфейс репозитория категорий номеров
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
}

// HotelReservationRepository интерфейс репозитория бронирований отеля
type HotelReservationRepository interface {
	List(ctx context.Context, status *domain.ReservationStatus) ([]*domain.HotelReservation, error)
}

// RestaurantReservationRepository интерфейс репозитория бронирований ресторана
type RestaurantReservationRepository interface {
	List(ctx context.Context, status *domain.ReservationStatus) ([]*domain.RestaurantReservation, error)
}

// MenuRepository интерфейс репозитория карты ресторана
type MenuRepository interface {
	ListItems(ctx context.Context) ([]*domain.MenuItem, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования).
// Окно ближайших заездов привязано к настоящему "сейчас", а не к
// выбранной на дашборде дате.
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
