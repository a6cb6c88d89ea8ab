package restaurant_reservations

import (
	"context"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	createRestaurantReservation "github.com/m04kA/ESJ-BookingService/internal/usecase/create_restaurant_reservation"
)

// CreateReservationUseCase интерфейс use case создания бронирования столика
type CreateReservationUseCase interface {
	Execute(ctx context.Context, req *createRestaurantReservation.Request) (*createRestaurantReservation.Response, error)
}

// ReservationsService интерфейс сервиса администрирования бронирований
type ReservationsService interface {
	ListRestaurant(ctx context.Context, status *string) ([]*domain.RestaurantReservation, error)
	UpdateRestaurantStatus(ctx context.Context, id int64, status string) (*domain.RestaurantReservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
