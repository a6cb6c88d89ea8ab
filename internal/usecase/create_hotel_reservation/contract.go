package create_hotel_reservation

import (
	"context"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// RoomRepository интерфейс репозитория категорий номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// ReservationRepository интерфейс репозитория бронирований отеля
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.HotelReservation) (*domain.HotelReservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
