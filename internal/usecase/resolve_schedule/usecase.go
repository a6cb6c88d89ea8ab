package resolve_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// UseCase use case определения доступных слотов ресторана на дату
type UseCase struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(scheduleRepo ScheduleRepository, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Execute выполняет use case разрешения расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		uc.logger.Warn("ResolveSchedule: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	days, err := uc.scheduleRepo.List(ctx)
	if err != nil {
		uc.logger.Error("ResolveSchedule: failed to load schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	availability := resolveAvailability(req.Date, days)

	uc.logger.Info("ResolveSchedule: date=%s day=%s open=%t slots=%d",
		req.Date.Format(domain.DateFormat), availability.DayName,
		availability.IsOpen, len(availability.AvailableSlots))

	return &Response{
		Date:           req.Date,
		IsOpen:         availability.IsOpen,
		DayName:        availability.DayName,
		LunchSlots:     availability.LunchSlots,
		DinnerSlots:    availability.DinnerSlots,
		AvailableSlots: availability.AvailableSlots,
	}, nil
}
