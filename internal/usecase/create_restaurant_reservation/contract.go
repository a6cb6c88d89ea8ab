package create_restaurant_reservation

import (
	"context"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория недельного расписания
type ScheduleRepository interface {
	List(ctx context.Context) ([]*domain.ScheduleDay, error)
}

// ReservationRepository интерфейс репозитория бронирований ресторана
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.RestaurantReservation) (*domain.RestaurantReservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
