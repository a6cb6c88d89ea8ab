package compute_dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

type fakeRoomRepo struct {
	rooms []*domain.Room
}

func (f *fakeRoomRepo) List(_ context.Context) ([]*domain.Room, error) {
	return f.rooms, nil
}

type fakeHotelRepo struct {
	reservations []*domain.HotelReservation
}

func (f *fakeHotelRepo) List(_ context.Context, _ *domain.ReservationStatus) ([]*domain.HotelReservation, error) {
	return f.reservations, nil
}

type fakeRestaurantRepo struct {
	reservations []*domain.RestaurantReservation
}

func (f *fakeRestaurantRepo) List(_ context.Context, _ *domain.ReservationStatus) ([]*domain.RestaurantReservation, error) {
	return f.reservations, nil
}

type fakeMenuRepo struct {
	items []*domain.MenuItem
}

func (f *fakeMenuRepo) ListItems(_ context.Context) ([]*domain.MenuItem, error) {
	return f.items, nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_FullSnapshot(t *testing.T) {
	rooms := &fakeRoomRepo{rooms: []*domain.Room{
		{ID: 1, Name: "Doble Estándar", Price: 75, MaxGuests: 2, TotalUnits: 2},
	}}
	hotel := &fakeHotelRepo{reservations: []*domain.HotelReservation{
		hotelRes(1, domain.StatusConfirmed, date(2025, 6, 25), date(2025, 6, 28), 225),
		hotelRes(1, domain.StatusPending, date(2025, 7, 1), date(2025, 7, 3), 150),
	}}
	restaurant := &fakeRestaurantRepo{reservations: []*domain.RestaurantReservation{
		{Status: domain.StatusConfirmed, Guests: 4},
		{Status: domain.StatusPending, Guests: 2},
	}}
	menu := &fakeMenuRepo{items: []*domain.MenuItem{
		{Available: true},
		{Available: false},
	}}

	uc := NewUseCase(rooms, hotel, restaurant, menu, nopLogger{}).
		WithTimeProvider(&fixedClock{now: date(2025, 6, 20)})

	resp, err := uc.Execute(context.Background(), &Request{ReferenceDate: date(2025, 6, 26)})

	require.NoError(t, err)

	assert.Equal(t, 2, resp.Hotel.TotalReservations)
	assert.Equal(t, 1, resp.Hotel.ConfirmedReservations)
	assert.Equal(t, 1, resp.Hotel.PendingReservations)
	assert.Equal(t, 225.0, resp.Hotel.TotalRevenue)
	assert.Equal(t, 3.0, resp.Hotel.AverageStay)

	require.Len(t, resp.Hotel.RoomOccupancy, 1)
	assert.Equal(t, 1, resp.Hotel.RoomOccupancy[0].Reservations)
	assert.Equal(t, 1, resp.Hotel.RoomOccupancy[0].AvailableRooms)
	assert.Equal(t, 50.0, resp.Hotel.RoomOccupancy[0].OccupancyRate)

	// Заезд 25-го попадает в окно [20, 27] от фиксированного "сейчас"
	require.Len(t, resp.Hotel.UpcomingArrivals, 1)
	assert.Equal(t, "Doble Estándar", resp.Hotel.UpcomingArrivals[0].RoomName)

	require.Len(t, resp.Hotel.MonthlyData, domain.MonthlyTrendMonths)
	assert.Equal(t, "Jun 2025", resp.Hotel.MonthlyData[5].Month)
	assert.Equal(t, 225.0, resp.Hotel.MonthlyData[5].Revenue)

	assert.Equal(t, 2, resp.Restaurant.TotalReservations)
	assert.Equal(t, 3.0, resp.Restaurant.AverageGuests)

	assert.Equal(t, 2, resp.Summary.TotalRooms)
	assert.Equal(t, 1, resp.Summary.AvailableRooms)
	assert.Equal(t, 1, resp.Summary.AvailableRoomsOnDate)
	assert.Equal(t, 2, resp.Summary.TotalMenuItems)
	assert.Equal(t, 1, resp.Summary.ActiveMenuItems)

	assert.Equal(t, date(2025, 6, 26), resp.SelectedDate)
}

func TestExecute_ZeroReferenceDateRejected(t *testing.T) {
	uc := NewUseCase(&fakeRoomRepo{}, &fakeHotelRepo{}, &fakeRestaurantRepo{}, &fakeMenuRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_EmptyDatabase(t *testing.T) {
	uc := NewUseCase(&fakeRoomRepo{}, &fakeHotelRepo{}, &fakeRestaurantRepo{}, &fakeMenuRepo{}, nopLogger{}).
		WithTimeProvider(&fixedClock{now: date(2025, 6, 20)})

	resp, err := uc.Execute(context.Background(), &Request{ReferenceDate: date(2025, 6, 26)})

	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Hotel.TotalRevenue)
	assert.Equal(t, 0.0, resp.Hotel.AverageStay)
	assert.Empty(t, resp.Hotel.UpcomingArrivals)
	require.Len(t, resp.Hotel.MonthlyData, domain.MonthlyTrendMonths)
	assert.Equal(t, 0.0, resp.Restaurant.AverageGuests)
}
