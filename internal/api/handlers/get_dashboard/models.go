package get_dashboard

import (
	"github.com/m04kA/ESJ-BookingService/internal/domain"
	computeDashboard "github.com/m04kA/ESJ-BookingService/internal/usecase/compute_dashboard"
)

// DashboardResponse HTTP response model
type DashboardResponse struct {
	Hotel        HotelStatsResponse      `json:"hotel"`
	Restaurant   RestaurantStatsResponse `json:"restaurant"`
	Summary      SummaryResponse         `json:"summary"`
	SelectedDate string                  `json:"selectedDate"`
}

// HotelStatsResponse показатели отеля
type HotelStatsResponse struct {
	TotalReservations     int                       `json:"totalReservations"`
	ConfirmedReservations int                       `json:"confirmedReservations"`
	PendingReservations   int                       `json:"pendingReservations"`
	CancelledReservations int                       `json:"cancelledReservations"`
	TotalRevenue          float64                   `json:"totalRevenue"`
	AverageStay           float64                   `json:"averageStay"`
	RoomOccupancy         []RoomOccupancyResponse   `json:"roomOccupancy"`
	MonthlyData           []MonthlyPointResponse    `json:"monthlyData"`
	UpcomingArrivals      []UpcomingArrivalResponse `json:"upcomingArrivals"`
}

// RoomOccupancyResponse загрузка одной категории номеров
type RoomOccupancyResponse struct {
	RoomName       string  `json:"roomName"`
	Reservations   int     `json:"reservations"`
	Revenue        float64 `json:"revenue"`
	OccupancyRate  float64 `json:"occupancyRate"`
	AvailableRooms int     `json:"availableRooms"`
	TotalRooms     int     `json:"totalRooms"`
}

// MonthlyPointResponse точка помесячной сводки
type MonthlyPointResponse struct {
	Month        string  `json:"month"`
	Reservations int     `json:"reservations"`
	Revenue      float64 `json:"revenue"`
}

// UpcomingArrivalResponse бронирование с заездом в ближайшие дни
type UpcomingArrivalResponse struct {
	ID        int64   `json:"id"`
	RoomID    int64   `json:"roomId"`
	RoomName  string  `json:"roomName"`
	GuestName string  `json:"guestName"`
	CheckIn   string  `json:"checkIn"`
	CheckOut  string  `json:"checkOut"`
	Guests    int     `json:"guests"`
	Total     float64 `json:"total"`
}

// RestaurantStatsResponse показатели ресторана
type RestaurantStatsResponse struct {
	TotalReservations     int     `json:"totalReservations"`
	ConfirmedReservations int     `json:"confirmedReservations"`
	PendingReservations   int     `json:"pendingReservations"`
	AverageGuests         float64 `json:"averageGuests"`
}

// SummaryResponse сводные показатели
type SummaryResponse struct {
	TotalRooms           int `json:"totalRooms"`
	AvailableRooms       int `json:"availableRooms"`
	AvailableRoomsOnDate int `json:"availableRoomsOnDate"`
	TotalMenuItems       int `json:"totalMenuItems"`
	ActiveMenuItems      int `json:"activeMenuItems"`
}

// FromUseCaseResponse конвертирует результат use case в HTTP ответ
func FromUseCaseResponse(resp *computeDashboard.Response) *DashboardResponse {
	occupancy := make([]RoomOccupancyResponse, 0, len(resp.Hotel.RoomOccupancy))
	for _, ro := range resp.Hotel.RoomOccupancy {
		occupancy = append(occupancy, RoomOccupancyResponse{
			RoomName:       ro.RoomName,
			Reservations:   ro.Reservations,
			Revenue:        ro.Revenue,
			OccupancyRate:  ro.OccupancyRate,
			AvailableRooms: ro.AvailableRooms,
			TotalRooms:     ro.TotalRooms,
		})
	}

	monthly := make([]MonthlyPointResponse, 0, len(resp.Hotel.MonthlyData))
	for _, mp := range resp.Hotel.MonthlyData {
		monthly = append(monthly, MonthlyPointResponse{
			Month:        mp.Month,
			Reservations: mp.Reservations,
			Revenue:      mp.Revenue,
		})
	}

	arrivals := make([]UpcomingArrivalResponse, 0, len(resp.Hotel.UpcomingArrivals))
	for _, ua := range resp.Hotel.UpcomingArrivals {
		arrivals = append(arrivals, UpcomingArrivalResponse{
			ID:        ua.Reservation.ID,
			RoomID:    ua.Reservation.RoomID,
			RoomName:  ua.RoomName,
			GuestName: ua.Reservation.GuestName,
			CheckIn:   ua.Reservation.CheckIn.Format(domain.DateFormat),
			CheckOut:  ua.Reservation.CheckOut.Format(domain.DateFormat),
			Guests:    ua.Reservation.Guests,
			Total:     ua.Reservation.TotalPrice,
		})
	}

	return &DashboardResponse{
		Hotel: HotelStatsResponse{
			TotalReservations:     resp.Hotel.TotalReservations,
			ConfirmedReservations: resp.Hotel.ConfirmedReservations,
			PendingReservations:   resp.Hotel.PendingReservations,
			CancelledReservations: resp.Hotel.CancelledReservations,
			TotalRevenue:          resp.Hotel.TotalRevenue,
			AverageStay:           resp.Hotel.AverageStay,
			RoomOccupancy:         occupancy,
			MonthlyData:           monthly,
			UpcomingArrivals:      arrivals,
		},
		Restaurant: RestaurantStatsResponse{
			TotalReservations:     resp.Restaurant.TotalReservations,
			ConfirmedReservations: resp.Restaurant.ConfirmedReservations,
			PendingReservations:   resp.Restaurant.PendingReservations,
			AverageGuests:         resp.Restaurant.AverageGuests,
		},
		Summary: SummaryResponse{
			TotalRooms:           resp.Summary.TotalRooms,
			AvailableRooms:       resp.Summary.AvailableRooms,
			AvailableRoomsOnDate: resp.Summary.AvailableRoomsOnDate,
			TotalMenuItems:       resp.Summary.TotalMenuItems,
			ActiveMenuItems:      resp.Summary.ActiveMenuItems,
		},
		SelectedDate: resp.SelectedDate.Format(domain.DateFormat),
	}
}
