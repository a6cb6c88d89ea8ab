package create_hotel_reservation

import (
	"time"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования отеля
type Request struct {
	RoomID    int64
	GuestName string
	Email     string
	Phone     string
	CheckIn   time.Time
	CheckOut  time.Time // не включается в проживание
	Guests    int
}

// Response созданное бронирование
type Response struct {
	Reservation *domain.HotelReservation
}
