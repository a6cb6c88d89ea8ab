package create_restaurant_reservation

import (
	"time"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	"github.com/m04kA/ESJ-BookingService/pkg/types"
)

// Request модель запроса на бронирование столика
type Request struct {
	GuestName string
	Phone     string
	Email     *string
	Date      time.Time
	Time      types.TimeString
	Guests    int
	Zone      string
	Notes     *string
}

// Response созданное бронирование
type Response struct {
	Reservation *domain.RestaurantReservation
}
