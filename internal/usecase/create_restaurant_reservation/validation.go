package create_restaurant_reservation

import (
	"fmt"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.GuestName == "" {
		return fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}
	if len(req.GuestName) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guest name is too long", ErrInvalidInput)
	}

	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Time == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if req.Guests < domain.MinReservationGuests {
		return fmt.Errorf("%w: at least one guest is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}
