package compute_dashboard

import (
	"time"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// Request модель запроса дашборда
type Request struct {
	ReferenceDate time.Time // дата, на которую считается загрузка номеров
}

// Response снапшот дашборда. Вычисляется заново на каждый запрос,
// никогда не персистится.
type Response struct {
	Hotel        HotelStats
	Restaurant   RestaurantStats
	Summary      Summary
	SelectedDate time.Time
}

// HotelStats показатели отеля
type HotelStats struct {
	TotalReservations     int
	ConfirmedReservations int
	PendingReservations   int
	CancelledReservations int
	TotalRevenue          float64
	AverageStay           float64 // ночей, округлено до 0.1
	RoomOccupancy         []RoomOccupancy
	MonthlyData           []MonthlyPoint
	UpcomingArrivals      []UpcomingArrival
}

// RoomOccupancy загрузка одной категории номеров на выбранную дату
type RoomOccupancy struct {
	RoomName       string
	Reservations   int
	Revenue        float64
	OccupancyRate  float64
	AvailableRooms int
	TotalRooms     int
}

// MonthlyPoint одна точка помесячной сводки подтвержденной выручки
type MonthlyPoint struct {
	Month        string
	Reservations int
	Revenue      float64
}

// UpcomingArrival подтвержденное бронирование с заездом в ближайшие 7 дней
type UpcomingArrival struct {
	Reservation *domain.HotelReservation
	RoomName    string
}

// RestaurantStats показатели ресторана
type RestaurantStats struct {
	TotalReservations     int
	ConfirmedReservations int
	PendingReservations   int
	AverageGuests         float64 // по всем статусам, округлено до 0.1
}

// Summary сводные показатели.
// AvailableRooms сохраняет историческое поведение: общее число юнитов минус
// количество всех подтвержденных бронирований, без привязки к дате (может
// уйти в минус). AvailableRoomsOnDate: скорректированный вариант,
// посчитанный на выбранную дату.
type Summary struct {
	TotalRooms           int
	AvailableRooms       int
	AvailableRoomsOnDate int
	TotalMenuItems       int
	ActiveMenuItems      int
}
