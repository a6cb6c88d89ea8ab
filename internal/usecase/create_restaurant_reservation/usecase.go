package create_restaurant_reservation

import (
	"context"
	"fmt"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// UseCase use case создания бронирования столика из публичной формы
type UseCase struct {
	scheduleRepo    ScheduleRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(scheduleRepo ScheduleRepository, reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo:    scheduleRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования столика
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRestaurantReservation: guest=%s date=%s time=%s guests=%d zone=%s",
		req.GuestName, req.Date.Format(domain.DateFormat), req.Time, req.Guests, req.Zone)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateRestaurantReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем недельное расписание и находим день недели даты
	days, err := uc.scheduleRepo.List(ctx)
	if err != nil {
		uc.logger.Error("CreateRestaurantReservation: failed to load schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	day := findDay(days, int(req.Date.Weekday()))

	// 3. Закрытый или неизвестный день: бронирование невозможно
	if day == nil || !day.IsOpen {
		uc.logger.Warn("CreateRestaurantReservation: restaurant closed on %s",
			req.Date.Format(domain.DateFormat))
		return nil, ErrRestaurantClosed
	}

	// 4. Время должно быть одним из предлагаемых слотов дня
	if !offersTime(day, req.Time) {
		uc.logger.Warn("CreateRestaurantReservation: time %s is not offered on %s",
			req.Time, day.DayName)
		return nil, ErrInvalidTimeSlot
	}

	// 5. Создаем бронирование в статусе pending.
	// Лимита мест на слот нет: подтверждение остается за администратором.
	reservation := &domain.RestaurantReservation{
		GuestName: req.GuestName,
		Phone:     req.Phone,
		Email:     req.Email,
		Date:      req.Date,
		Time:      req.Time,
		Guests:    req.Guests,
		Zone:      req.Zone,
		Notes:     req.Notes,
		Status:    domain.StatusPending,
	}

	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		uc.logger.Error("CreateRestaurantReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateRestaurantReservation: created reservation id=%d", created.ID)

	return &Response{Reservation: created}, nil
}
