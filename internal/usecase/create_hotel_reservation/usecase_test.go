package create_hotel_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	roomRepo "github.com/m04kA/ESJ-BookingService/internal/infra/storage/room"
)

type fakeRoomRepo struct {
	room *domain.Room
	err  error
}

func (f *fakeRoomRepo) GetByID(_ context.Context, _ int64) (*domain.Room, error) {
	return f.room, f.err
}

type fakeReservationRepo struct {
	created *domain.HotelReservation
	err     error
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.HotelReservation) (*domain.HotelReservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := *res
	created.ID = 1
	f.created = &created
	return &created, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validRequest() *Request {
	return &Request{
		RoomID:    1,
		GuestName: "María García",
		Email:     "maria@example.com",
		Phone:     "+34 600 000 000",
		CheckIn:   date(2025, 6, 25),
		CheckOut:  date(2025, 6, 28),
		Guests:    2,
	}
}

func TestExecute_CreatesPendingReservationWithComputedPrice(t *testing.T) {
	rooms := &fakeRoomRepo{room: &domain.Room{ID: 1, Name: "Doble", Price: 75, MaxGuests: 2, TotalUnits: 2}}
	reservations := &fakeReservationRepo{}
	uc := NewUseCase(rooms, reservations, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, resp.Reservation.Status)
	assert.Equal(t, 225.0, resp.Reservation.TotalPrice) // 3 ночи × 75
	assert.Equal(t, int64(1), resp.Reservation.RoomID)
	require.NotNil(t, reservations.created)
	assert.Equal(t, domain.StatusPending, reservations.created.Status)
}

func TestExecute_RoomNotFound(t *testing.T) {
	rooms := &fakeRoomRepo{err: roomRepo.ErrRoomNotFound}
	uc := NewUseCase(rooms, &fakeReservationRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_TooManyGuests(t *testing.T) {
	rooms := &fakeRoomRepo{room: &domain.Room{ID: 1, Price: 75, MaxGuests: 2}}
	uc := NewUseCase(rooms, &fakeReservationRepo{}, nopLogger{})

	req := validRequest()
	req.Guests = 3

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrTooManyGuests)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"check-out equals check-in", func(r *Request) { r.CheckOut = r.CheckIn }, ErrInvalidDateRange},
		{"check-out before check-in", func(r *Request) { r.CheckOut = r.CheckIn.AddDate(0, 0, -1) }, ErrInvalidDateRange},
		{"missing guest name", func(r *Request) { r.GuestName = "" }, ErrInvalidInput},
		{"missing email", func(r *Request) { r.Email = "" }, ErrInvalidInput},
		{"zero guests", func(r *Request) { r.Guests = 0 }, ErrInvalidInput},
		{"non-positive room id", func(r *Request) { r.RoomID = 0 }, ErrInvalidInput},
	}

	rooms := &fakeRoomRepo{room: &domain.Room{ID: 1, Price: 75, MaxGuests: 4}}
	uc := NewUseCase(rooms, &fakeReservationRepo{}, nopLogger{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"three full nights", date(2025, 6, 25), date(2025, 6, 28), 3},
		{"single night", date(2025, 6, 25), date(2025, 6, 26), 1},
		{"same day is zero", date(2025, 6, 25), date(2025, 6, 25), 0},
		{
			"partial day rounds up",
			time.Date(2025, 6, 25, 14, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 26, 11, 0, 0, 0, time.UTC),
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &domain.HotelReservation{CheckIn: tt.checkIn, CheckOut: tt.checkOut}
			assert.Equal(t, tt.want, r.Nights())
		})
	}
}
