package restaurant_reservations

import (
	"time"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	createRestaurantReservation "github.com/m04kA/ESJ-BookingService/internal/usecase/create_restaurant_reservation"
	"github.com/m04kA/ESJ-BookingService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	GuestName string  `json:"guestName"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	Date      string  `json:"date"` // "2025-06-25"
	Time      string  `json:"time"` // "14:00"
	Guests    int     `json:"guests"`
	Zone      string  `json:"zone"`
	Notes     *string `json:"notes,omitempty"`
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        int64   `json:"id"`
	GuestName string  `json:"guestName"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Guests    int     `json:"guests"`
	Zone      string  `json:"zone"`
	Notes     *string `json:"notes,omitempty"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"` // ISO 8601
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createRestaurantReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createRestaurantReservation.Request{
		GuestName: r.GuestName,
		Phone:     r.Phone,
		Email:     r.Email,
		Date:      date,
		Time:      slot,
		Guests:    r.Guests,
		Zone:      r.Zone,
		Notes:     r.Notes,
	}, nil
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(res *domain.RestaurantReservation) *ReservationResponse {
	return &ReservationResponse{
		ID:        res.ID,
		GuestName: res.GuestName,
		Phone:     res.Phone,
		Email:     res.Email,
		Date:      res.Date.Format(domain.DateFormat),
		Time:      res.Time.String(),
		Guests:    res.Guests,
		Zone:      res.Zone,
		Notes:     res.Notes,
		Status:    string(res.Status),
		CreatedAt: res.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список бронирований в DTO
func FromDomainReservationList(reservations []*domain.RestaurantReservation) *ReservationListResponse {
	resp := &ReservationListResponse{Reservations: make([]ReservationResponse, 0, len(reservations))}
	for _, res := range reservations {
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(res))
	}
	return resp
}
