package hotel_reservations

import (
	"time"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	createHotelReservation "github.com/m04kA/ESJ-BookingService/internal/usecase/create_hotel_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	RoomID    int64  `json:"roomId"`
	GuestName string `json:"guestName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CheckIn   string `json:"checkIn"`  // "2025-06-25"
	CheckOut  string `json:"checkOut"` // "2025-06-28"
	Guests    int    `json:"guests"`
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID         int64   `json:"id"`
	RoomID     int64   `json:"roomId"`
	GuestName  string  `json:"guestName"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	Guests     int     `json:"guests"`
	TotalPrice float64 `json:"totalPrice"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"` // ISO 8601
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createHotelReservation.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createHotelReservation.Request{
		RoomID:    r.RoomID,
		GuestName: r.GuestName,
		Email:     r.Email,
		Phone:     r.Phone,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Guests:    r.Guests,
	}, nil
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(res *domain.HotelReservation) *ReservationResponse {
	return &ReservationResponse{
		ID:         res.ID,
		RoomID:     res.RoomID,
		GuestName:  res.GuestName,
		Email:      res.Email,
		Phone:      res.Phone,
		CheckIn:    res.CheckIn.Format(domain.DateFormat),
		CheckOut:   res.CheckOut.Format(domain.DateFormat),
		Guests:     res.Guests,
		TotalPrice: res.TotalPrice,
		Status:     string(res.Status),
		CreatedAt:  res.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список бронирований в DTO
func FromDomainReservationList(reservations []*domain.HotelReservation) *ReservationListResponse {
	resp := &ReservationListResponse{Reservations: make([]ReservationResponse, 0, len(reservations))}
	for _, res := range reservations {
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(res))
	}
	return resp
}
