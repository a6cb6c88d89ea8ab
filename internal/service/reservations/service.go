package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	hotelRepo "github.com/m04kA/ESJ-BookingService/internal/infra/storage/hotelreservation"
	restaurantRepo "github.com/m04kA/ESJ-BookingService/internal/infra/storage/restaurantreservation"
)

// Service сервис администрирования бронирований отеля и ресторана
type Service struct {
	hotelRepo      HotelReservationRepository
	restaurantRepo RestaurantReservationRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	hotelRepo HotelReservationRepository,
	restaurantRepo RestaurantReservationRepository,
	logger Logger,
) *Service {
	return &Service{
		hotelRepo:      hotelRepo,
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}
}

// ListHotel получает бронирования отеля, опционально фильтруя по статусу
func (s *Service) ListHotel(ctx context.Context, status *string) ([]*domain.HotelReservation, error) {
	domainStatus, err := toDomainStatus(status)
	if err != nil {
		s.logger.Warn("ListHotel: invalid status filter %v", *status)
		return nil, err
	}

	reservations, err := s.hotelRepo.List(ctx, domainStatus)
	if err != nil {
		s.logger.Error("ListHotel: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListHotel - repository error: %v", ErrInternal, err)
	}

	return reservations, nil
}

// ListRestaurant получает бронирования ресторана, опционально фильтруя по статусу
func (s *Service) ListRestaurant(ctx context.Context, status *string) ([]*domain.RestaurantReservation, error) {
	domainStatus, err := toDomainStatus(status)
	if err != nil {
		s.logger.Warn("ListRestaurant: invalid status filter %v", *status)
		return nil, err
	}

	reservations, err := s.restaurantRepo.List(ctx, domainStatus)
	if err != nil {
		s.logger.Error("ListRestaurant: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRestaurant - repository error: %v", ErrInternal, err)
	}

	return reservations, nil
}

// UpdateHotelStatus переводит бронирование отеля в новый статус.
// Разрешены только переходы pending -> confirmed и pending -> cancelled.
// Бронирования никогда не удаляются.
func (s *Service) UpdateHotelStatus(ctx context.Context, id int64, status string) (*domain.HotelReservation, error) {
	s.logger.Info("UpdateHotelStatus: reservation id=%d -> status=%s", id, status)

	newStatus := domain.ReservationStatus(status)
	if !newStatus.IsValid() {
		s.logger.Warn("UpdateHotelStatus: invalid status=%s for id=%d", status, id)
		return nil, ErrInvalidStatus
	}

	reservation, err := s.hotelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateHotelStatus: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateHotelStatus: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateHotelStatus - repository error: %v", ErrInternal, err)
	}

	if err := checkTransition(reservation.Status, newStatus); err != nil {
		s.logger.Warn("UpdateHotelStatus: transition %s -> %s rejected for id=%d",
			reservation.Status, newStatus, id)
		return nil, err
	}

	if err := s.hotelRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, hotelRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateHotelStatus: failed to update id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateHotelStatus - repository error: %v", ErrInternal, err)
	}
	reservation.Status = newStatus

	s.logger.Info("UpdateHotelStatus: reservation id=%d is now %s", id, newStatus)
	return reservation, nil
}

// UpdateRestaurantStatus переводит бронирование ресторана в новый статус.
// Правила перехода те же, что и для отеля.
func (s *Service) UpdateRestaurantStatus(ctx context.Context, id int64, status string) (*domain.RestaurantReservation, error) {
	s.logger.Info("UpdateRestaurantStatus: reservation id=%d -> status=%s", id, status)

	newStatus := domain.ReservationStatus(status)
	if !newStatus.IsValid() {
		s.logger.Warn("UpdateRestaurantStatus: invalid status=%s for id=%d", status, id)
		return nil, ErrInvalidStatus
	}

	reservation, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateRestaurantStatus: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateRestaurantStatus: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateRestaurantStatus - repository error: %v", ErrInternal, err)
	}

	if err := checkTransition(reservation.Status, newStatus); err != nil {
		s.logger.Warn("UpdateRestaurantStatus: transition %s -> %s rejected for id=%d",
			reservation.Status, newStatus, id)
		return nil, err
	}

	if err := s.restaurantRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, restaurantRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateRestaurantStatus: failed to update id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateRestaurantStatus - repository error: %v", ErrInternal, err)
	}
	reservation.Status = newStatus

	s.logger.Info("UpdateRestaurantStatus: reservation id=%d is now %s", id, newStatus)
	return reservation, nil
}

// checkTransition проверяет допустимость перехода статуса
func checkTransition(current, next domain.ReservationStatus) error {
	if current != domain.StatusPending {
		return ErrInvalidTransition
	}
	if next != domain.StatusConfirmed && next != domain.StatusCancelled {
		return ErrInvalidTransition
	}
	return nil
}

// toDomainStatus конвертирует опциональный строковый фильтр в domain статус
func toDomainStatus(status *string) (*domain.ReservationStatus, error) {
	if status == nil {
		return nil, nil
	}
	domainStatus := domain.ReservationStatus(*status)
	if !domainStatus.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &domainStatus, nil
}
