package reservations

import (
	"context"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// HotelReservationRepository интерфейс репозитория бронирований отеля
type HotelReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.HotelReservation, error)
	List(ctx context.Context, status *domain.ReservationStatus) ([]*domain.HotelReservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
}

// RestaurantReservationRepository интерфейс репозитория бронирований ресторана
type RestaurantReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.RestaurantReservation, error)
	List(ctx context.Context, status *domain.ReservationStatus) ([]*domain.RestaurantReservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
