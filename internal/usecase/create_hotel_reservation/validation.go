package create_hotel_reservation

import (
	"fmt"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.GuestName == "" {
		return fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}
	if len(req.GuestName) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guest name is too long", ErrInvalidInput)
	}

	if req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if req.Guests < domain.MinReservationGuests {
		return fmt.Errorf("%w: at least one guest is required", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidInput)
	}

	// Выезд строго позже заезда; равенство означает вырожденное бронирование
	// на ноль ночей, запрещено на создании
	if !req.CheckOut.After(req.CheckIn) {
		return ErrInvalidDateRange
	}

	return nil
}
