package domain

import (
	"time"

	"github.com/m04kA/ESJ-BookingService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// IsValid returns true if the status is one of the known values
func (s ReservationStatus) IsValid() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

// HotelReservation represents a reservation of a room category for a date range.
// CheckOut is exclusive: the guest occupies the nights [CheckIn, CheckOut).
type HotelReservation struct {
	ID         int64
	RoomID     int64
	GuestName  string
	Email      string
	Phone      string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	TotalPrice float64
	Status     ReservationStatus
	CreatedAt  time.Time
}

// Nights возвращает количество ночей проживания (ceil по дням).
// Для вырожденного случая CheckIn == CheckOut возвращает 0.
func (r *HotelReservation) Nights() int {
	hours := r.CheckOut.Sub(r.CheckIn).Hours()
	if hours <= 0 {
		return 0
	}
	nights := int(hours / 24)
	if hours > float64(nights)*24 {
		nights++
	}
	return nights
}

// OccupiesDate возвращает true, если бронирование занимает ночь с даты date.
// Используется полуоткрытый интервал [CheckIn, CheckOut): день выезда
// ночь не занимает.
func (r *HotelReservation) OccupiesDate(date time.Time) bool {
	return !date.Before(r.CheckIn) && date.Before(r.CheckOut)
}

// RestaurantReservation represents a table reservation for a single
// date/time/zone. There is no per-slot seat limit: a slot being offered
// does not mean it has free capacity.
type RestaurantReservation struct {
	ID        int64
	GuestName string
	Phone     string
	Email     *string
	Date      time.Time
	Time      types.TimeString
	Guests    int
	Zone      string
	Notes     *string
	Status    ReservationStatus
	CreatedAt time.Time
}
