package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/ESJ-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/ESJ-BookingService/pkg/types"
)

// Service сервис для работы с недельным расписанием ресторана
type Service struct {
	repo   ScheduleRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(repo ScheduleRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает полную недельную таблицу расписания
func (s *Service) List(ctx context.Context) ([]*domain.ScheduleDay, error) {
	days, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return days, nil
}

// UpdateDay обновляет конфигурацию одного дня недели.
// Слоты валидируются как HH:MM и сохраняются в переданном порядке:
// никакой пересортировки не выполняется.
func (s *Service) UpdateDay(ctx context.Context, dayOfWeek int, isOpen bool, lunchSlots, dinnerSlots []string) (*domain.ScheduleDay, error) {
	s.logger.Info("UpdateDay: day=%d isOpen=%t lunch=%d dinner=%d",
		dayOfWeek, isOpen, len(lunchSlots), len(dinnerSlots))

	if dayOfWeek < 0 || dayOfWeek >= domain.DaysInWeek {
		s.logger.Warn("UpdateDay: invalid day of week %d", dayOfWeek)
		return nil, ErrInvalidDayOfWeek
	}

	lunch, err := parseSlots(lunchSlots)
	if err != nil {
		s.logger.Warn("UpdateDay: invalid lunch slot for day=%d: %v", dayOfWeek, err)
		return nil, err
	}
	dinner, err := parseSlots(dinnerSlots)
	if err != nil {
		s.logger.Warn("UpdateDay: invalid dinner slot for day=%d: %v", dayOfWeek, err)
		return nil, err
	}

	if err := s.repo.UpdateDay(ctx, dayOfWeek, isOpen, lunch, dinner); err != nil {
		if errors.Is(err, scheduleRepo.ErrDayNotFound) {
			s.logger.Warn("UpdateDay: day=%d not found", dayOfWeek)
			return nil, ErrDayNotFound
		}
		s.logger.Error("UpdateDay: repository error for day=%d: %v", dayOfWeek, err)
		return nil, fmt.Errorf("%w: UpdateDay - repository error: %v", ErrInternal, err)
	}

	days, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("UpdateDay: failed to reload schedule: %v", err)
		return nil, fmt.Errorf("%w: UpdateDay - failed to reload schedule: %v", ErrInternal, err)
	}
	for _, day := range days {
		if day.DayOfWeek == dayOfWeek {
			s.logger.Info("UpdateDay: successfully updated day=%d", dayOfWeek)
			return day, nil
		}
	}

	return nil, ErrDayNotFound
}

// parseSlots валидирует и конвертирует слоты, сохраняя порядок
func parseSlots(slots []string) ([]types.TimeString, error) {
	parsed := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		ts, err := types.NewTimeStringFromString(slot)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
		}
		parsed = append(parsed, ts)
	}
	return parsed, nil
}
