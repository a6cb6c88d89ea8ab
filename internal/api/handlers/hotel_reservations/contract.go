package hotel_reservations

import (
	"context"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	createHotelReservation "github.com/m04kA/ESJ-BookingService/internal/usecase/create_hotel_reservation"
)

// CreateReservationUseCase интерфейс use case создания бронирования отеля
type CreateReservationUseCase interface {
	Execute(ctx context.Context, req *createHotelReservation.Request) (*createHotelReservation.Response, error)
}

// ReservationsService интерфейс сервиса администрирования бронирований
type ReservationsService interface {
	ListHotel(ctx context.Context, status *string) ([]*domain.HotelReservation, error)
	UpdateHotelStatus(ctx context.Context, id int64, status string) (*domain.HotelReservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
