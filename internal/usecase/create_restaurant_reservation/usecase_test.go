package create_restaurant_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	"github.com/m04kA/ESJ-BookingService/pkg/types"
)

type fakeScheduleRepo struct {
	days []*domain.ScheduleDay
	err  error
}

func (f *fakeScheduleRepo) List(_ context.Context) ([]*domain.ScheduleDay, error) {
	return f.days, f.err
}

type fakeReservationRepo struct {
	created *domain.RestaurantReservation
	err     error
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.RestaurantReservation) (*domain.RestaurantReservation, error) {
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

func schedule() []*domain.ScheduleDay {
	return []*domain.ScheduleDay{
		{DayOfWeek: 0, DayName: "Domingo", IsOpen: true,
			LunchSlots:  types.TimeStrings([]string{"13:00", "14:00"}),
			DinnerSlots: types.TimeStrings([]string{"20:00", "21:00"})},
		{DayOfWeek: 1, DayName: "Lunes", IsOpen: false,
			LunchSlots: types.TimeStrings([]string{"13:00"})},
	}
}

func validRequest() *Request {
	return &Request{
		GuestName: "Pedro Sánchez",
		Phone:     "+34 600 111 222",
		Date:      time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC), // воскресенье
		Time:      "14:00",
		Guests:    4,
		Zone:      "terraza",
	}
}

func TestExecute_CreatesPendingReservation(t *testing.T) {
	reservations := &fakeReservationRepo{}
	uc := NewUseCase(&fakeScheduleRepo{days: schedule()}, reservations, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, resp.Reservation.Status)
	assert.Equal(t, types.TimeString("14:00"), resp.Reservation.Time)
	require.NotNil(t, reservations.created)
}

func TestExecute_ClosedDayRejected(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{days: schedule()}, &fakeReservationRepo{}, nopLogger{})

	req := validRequest()
	req.Date = time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC) // понедельник, закрыто
	req.Time = "13:00"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrRestaurantClosed)
}

func TestExecute_MissingScheduleEntryRejected(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{days: schedule()}, &fakeReservationRepo{}, nopLogger{})

	req := validRequest()
	req.Date = time.Date(2025, 6, 24, 0, 0, 0, 0, time.UTC) // вторник: записи нет

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrRestaurantClosed)
}

func TestExecute_TimeOutsideOfferedSlots(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{days: schedule()}, &fakeReservationRepo{}, nopLogger{})

	req := validRequest()
	req.Time = "17:30"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_DinnerSlotAccepted(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{days: schedule()}, &fakeReservationRepo{}, nopLogger{})

	req := validRequest()
	req.Time = "21:00"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("21:00"), resp.Reservation.Time)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing guest name", func(r *Request) { r.GuestName = "" }},
		{"missing phone", func(r *Request) { r.Phone = "" }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"missing time", func(r *Request) { r.Time = "" }},
		{"zero guests", func(r *Request) { r.Guests = 0 }},
	}

	uc := NewUseCase(&fakeScheduleRepo{days: schedule()}, &fakeReservationRepo{}, nopLogger{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
