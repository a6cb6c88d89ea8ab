package compute_dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func hotelRes(roomID int64, status domain.ReservationStatus, checkIn, checkOut time.Time, price float64) *domain.HotelReservation {
	return &domain.HotelReservation{
		RoomID:     roomID,
		Status:     status,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: price,
	}
}

func TestPartitionByStatus(t *testing.T) {
	reservations := []*domain.HotelReservation{
		{Status: domain.StatusConfirmed},
		{Status: domain.StatusPending},
		{Status: domain.StatusConfirmed},
		{Status: domain.StatusCancelled},
	}

	p := partitionByStatus(reservations)

	assert.Len(t, p.confirmed, 2)
	assert.Len(t, p.pending, 1)
	assert.Len(t, p.cancelled, 1)
}

func TestTotalRevenue_ConfirmedOnly(t *testing.T) {
	all := []*domain.HotelReservation{
		hotelRes(1, domain.StatusConfirmed, date(2025, 6, 1), date(2025, 6, 3), 100),
		hotelRes(1, domain.StatusPending, date(2025, 6, 1), date(2025, 6, 3), 200),
		hotelRes(1, domain.StatusCancelled, date(2025, 6, 1), date(2025, 6, 3), 400),
	}

	p := partitionByStatus(all)

	assert.Equal(t, 100.0, totalRevenue(p.confirmed))
}

func TestAverageStay(t *testing.T) {
	tests := []struct {
		name      string
		confirmed []*domain.HotelReservation
		want      float64
	}{
		{"empty set is zero", nil, 0},
		{
			"single reservation",
			[]*domain.HotelReservation{
				hotelRes(1, domain.StatusConfirmed, date(2025, 6, 1), date(2025, 6, 4), 0),
			},
			3,
		},
		{
			"rounded to one decimal",
			[]*domain.HotelReservation{
				hotelRes(1, domain.StatusConfirmed, date(2025, 6, 1), date(2025, 6, 2), 0),
				hotelRes(1, domain.StatusConfirmed, date(2025, 6, 1), date(2025, 6, 3), 0),
				hotelRes(1, domain.StatusConfirmed, date(2025, 6, 1), date(2025, 6, 3), 0),
			},
			1.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, averageStay(tt.confirmed))
		})
	}
}

func TestRoomOccupancy_HalfOpenInterval(t *testing.T) {
	rooms := []*domain.Room{{ID: 1, Name: "Doble", TotalUnits: 2}}
	confirmed := []*domain.HotelReservation{
		hotelRes(1, domain.StatusConfirmed, date(2025, 6, 10), date(2025, 6, 12), 150),
	}

	tests := []struct {
		name         string
		ref          time.Time
		wantOccupied int
	}{
		{"check-in day occupied", date(2025, 6, 10), 1},
		{"middle night occupied", date(2025, 6, 11), 1},
		{"check-out day free", date(2025, 6, 12), 0},
		{"before check-in free", date(2025, 6, 9), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roomOccupancy(rooms, confirmed, tt.ref)
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantOccupied, got[0].Reservations)
		})
	}
}

func TestRoomOccupancy_DegenerateReservationOccupiesNothing(t *testing.T) {
	rooms := []*domain.Room{{ID: 1, Name: "Doble", TotalUnits: 2}}
	confirmed := []*domain.HotelReservation{
		hotelRes(1, domain.StatusConfirmed, date(2025, 6, 10), date(2025, 6, 10), 0),
	}

	got := roomOccupancy(rooms, confirmed, date(2025, 6, 10))

	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].Reservations)
}

func TestRoomOccupancy_OverbookingFlooredAtZero(t *testing.T) {
	rooms := []*domain.Room{{ID: 1, Name: "Individual", TotalUnits: 1}}
	confirmed := []*domain.HotelReservation{
		hotelRes(1, domain.StatusConfirmed, date(2025, 6, 10), date(2025, 6, 12), 80),
		hotelRes(1, domain.StatusConfirmed, date(2025, 6, 10), date(2025, 6, 12), 80),
		hotelRes(1, domain.StatusConfirmed, date(2025, 6, 10), date(2025, 6, 12), 80),
	}

	got := roomOccupancy(rooms, confirmed, date(2025, 6, 11))

	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Reservations)
	assert.Equal(t, 0, got[0].AvailableRooms)
	assert.Equal(t, 300.0, got[0].OccupancyRate)
}

func TestRoomOccupancy_ZeroUnitsZeroRate(t *testing.T) {
	rooms := []*domain.Room{{ID: 1, Name: "Retirada", TotalUnits: 0}}

	got := roomOccupancy(rooms, nil, date(2025, 6, 11))

	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0].OccupancyRate)
	assert.Equal(t, 0, got[0].AvailableRooms)
}

func TestUpcomingArrivals_WindowBounds(t *testing.T) {
	today := date(2025, 6, 20)
	rooms := []*domain.Room{{ID: 1, Name: "Doble"}}
	confirmed := []*domain.HotelReservation{
		hotelRes(1, domain.StatusConfirmed, date(2025, 6, 19), date(2025, 6, 21), 0), // вчера, вне окна
		hotelRes(1, domain.StatusConfirmed, date(2025, 6, 20), date(2025, 6, 22), 0), // сегодня
		hotelRes(1, domain.StatusConfirmed, date(2025, 6, 27), date(2025, 6, 29), 0), // today+7, включается
		hotelRes(1, domain.StatusConfirmed, date(2025, 6, 28), date(2025, 6, 30), 0), // today+8, вне окна
	}

	got := upcomingArrivals(confirmed, rooms, today)

	require.Len(t, got, 2)
	assert.Equal(t, date(2025, 6, 20), got[0].Reservation.CheckIn)
	assert.Equal(t, date(2025, 6, 27), got[1].Reservation.CheckIn)
}

func TestUpcomingArrivals_StableSortByCheckIn(t *testing.T) {
	today := date(2025, 6, 20)
	rooms := []*domain.Room{{ID: 1, Name: "Doble"}}

	first := hotelRes(1, domain.StatusConfirmed, date(2025, 6, 22), date(2025, 6, 23), 0)
	first.GuestName = "Ana"
	second := hotelRes(1, domain.StatusConfirmed, date(2025, 6, 22), date(2025, 6, 24), 0)
	second.GuestName = "Bruno"
	later := hotelRes(1, domain.StatusConfirmed, date(2025, 6, 25), date(2025, 6, 26), 0)
	later.GuestName = "Carmen"

	got := upcomingArrivals([]*domain.HotelReservation{later, first, second}, rooms, today)

	require.Len(t, got, 3)
	assert.Equal(t, "Ana", got[0].Reservation.GuestName)
	assert.Equal(t, "Bruno", got[1].Reservation.GuestName)
	assert.Equal(t, "Carmen", got[2].Reservation.GuestName)
}

func TestUpcomingArrivals_DeletedRoomGetsPlaceholderName(t *testing.T) {
	today := date(2025, 6, 20)
	confirmed := []*domain.HotelReservation{
		hotelRes(42, domain.StatusConfirmed, date(2025, 6, 21), date(2025, 6, 23), 0),
	}

	got := upcomingArrivals(confirmed, nil, today)

	require.Len(t, got, 1)
	assert.Equal(t, "Habitación 42", got[0].RoomName)
}

func TestMonthlyTrend_SixBucketsEndingAtReferenceMonth(t *testing.T) {
	ref := date(2025, 6, 15)
	confirmed := []*domain.HotelReservation{
		hotelRes(1, domain.StatusConfirmed, date(2025, 1, 10), date(2025, 1, 12), 100),
		hotelRes(1, domain.StatusConfirmed, date(2025, 4, 5), date(2025, 4, 8), 300),
		hotelRes(1, domain.StatusConfirmed, date(2025, 4, 20), date(2025, 4, 22), 200),
		hotelRes(1, domain.StatusConfirmed, date(2025, 6, 30), date(2025, 7, 2), 150),
		hotelRes(1, domain.StatusConfirmed, date(2024, 12, 28), date(2025, 1, 2), 999), // до окна
	}

	got := monthlyTrend(confirmed, ref)

	require.Len(t, got, domain.MonthlyTrendMonths)
	assert.Equal(t, "Ene 2025", got[0].Month)
	assert.Equal(t, "Jun 2025", got[5].Month)

	assert.Equal(t, 1, got[0].Reservations)
	assert.Equal(t, 100.0, got[0].Revenue)

	// Апрель: две резервации в одной корзине
	assert.Equal(t, "Abr 2025", got[3].Month)
	assert.Equal(t, 2, got[3].Reservations)
	assert.Equal(t, 500.0, got[3].Revenue)

	// Заезд в конце июня попадает в июнь независимо от даты выезда
	assert.Equal(t, 1, got[5].Reservations)
	assert.Equal(t, 150.0, got[5].Revenue)
}

func TestMonthlyTrend_CrossesYearBoundary(t *testing.T) {
	ref := date(2025, 2, 1)

	got := monthlyTrend(nil, ref)

	require.Len(t, got, domain.MonthlyTrendMonths)
	assert.Equal(t, "Sep 2024", got[0].Month)
	assert.Equal(t, "Dic 2024", got[3].Month)
	assert.Equal(t, "Feb 2025", got[5].Month)
}

func TestRestaurantStats_AverageGuestsOverAllStatuses(t *testing.T) {
	reservations := []*domain.RestaurantReservation{
		{Status: domain.StatusConfirmed, Guests: 2},
		{Status: domain.StatusPending, Guests: 4},
		{Status: domain.StatusCancelled, Guests: 6},
	}

	got := restaurantStats(reservations)

	assert.Equal(t, 3, got.TotalReservations)
	assert.Equal(t, 1, got.ConfirmedReservations)
	assert.Equal(t, 1, got.PendingReservations)
	assert.Equal(t, 4.0, got.AverageGuests)
}

func TestRestaurantStats_Empty(t *testing.T) {
	got := restaurantStats(nil)

	assert.Equal(t, 0, got.TotalReservations)
	assert.Equal(t, 0.0, got.AverageGuests)
}

func TestSummary_LegacyAvailableRoomsMayGoNegative(t *testing.T) {
	rooms := []*domain.Room{
		{ID: 1, TotalUnits: 2},
	}
	confirmed := []*domain.HotelReservation{
		hotelRes(1, domain.StatusConfirmed, date(2025, 6, 1), date(2025, 6, 3), 0),
		hotelRes(1, domain.StatusConfirmed, date(2025, 7, 1), date(2025, 7, 3), 0),
		hotelRes(1, domain.StatusConfirmed, date(2025, 8, 1), date(2025, 8, 3), 0),
	}
	occupancy := roomOccupancy(rooms, confirmed, date(2025, 6, 2))
	items := []*domain.MenuItem{
		{Available: true},
		{Available: false},
		{Available: true},
	}

	got := summary(rooms, confirmed, occupancy, items)

	assert.Equal(t, 2, got.TotalRooms)
	assert.Equal(t, -1, got.AvailableRooms)
	assert.Equal(t, 1, got.AvailableRoomsOnDate)
	assert.Equal(t, 3, got.TotalMenuItems)
	assert.Equal(t, 2, got.ActiveMenuItems)
}

func TestOccupancyScenario(t *testing.T) {
	// Одна категория на 2 юнита по 75/ночь, одно подтвержденное
	// бронирование на 3 ночи поверх выбранной даты
	rooms := []*domain.Room{{ID: 1, Name: "Doble Estándar", Price: 75, TotalUnits: 2}}
	confirmed := []*domain.HotelReservation{
		hotelRes(1, domain.StatusConfirmed, date(2025, 6, 25), date(2025, 6, 28), 225),
	}

	got := roomOccupancy(rooms, confirmed, date(2025, 6, 26))

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Reservations)
	assert.Equal(t, 225.0, got[0].Revenue)
	assert.Equal(t, 1, got[0].AvailableRooms)
	assert.Equal(t, 50.0, got[0].OccupancyRate)
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 1.7, round1(5.0/3.0))
	assert.Equal(t, 2.5, round1(2.46))
	assert.Equal(t, 0.0, round1(0))
}
