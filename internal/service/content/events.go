package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	contentRepo "github.com/m04kA/ESJ-BookingService/internal/infra/storage/content"
)

// ListEvents возвращает события.
// С onlyVisible=true скрытые записи отфильтровываются (публичная витрина).
func (s *Service) ListEvents(ctx context.Context, onlyVisible bool) ([]*domain.Event, error) {
	events, err := s.contentRepo.ListEvents(ctx, onlyVisible)
	if err != nil {
		s.logger.Error("ListEvents: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListEvents - repository error: %v", ErrInternal, err)
	}

	return events, nil
}

// CreateEvent создает новое событие
func (s *Service) CreateEvent(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	s.logger.Info("CreateEvent: creating event name=%s", e.Name)

	if e.Name == "" {
		s.logger.Warn("CreateEvent: name is required")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	created, err := s.contentRepo.CreateEvent(ctx, e)
	if err != nil {
		s.logger.Error("CreateEvent: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateEvent - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateEvent: created event id=%d", created.ID)
	return created, nil
}

// UpdateEvent обновляет событие
func (s *Service) UpdateEvent(ctx context.Context, id int64, e *domain.Event) (*domain.Event, error) {
	s.logger.Info("UpdateEvent: updating event id=%d", id)

	if e.Name == "" {
		s.logger.Warn("UpdateEvent: name is required for id=%d", id)
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	updated, err := s.contentRepo.UpdateEvent(ctx, id, e)
	if err != nil {
		if errors.Is(err, contentRepo.ErrEventNotFound) {
			s.logger.Warn("UpdateEvent: event id=%d not found", id)
			return nil, ErrEventNotFound
		}
		s.logger.Error("UpdateEvent: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateEvent - repository error: %v", ErrInternal, err)
	}

	return updated, nil
}

// DeleteEvent удаляет событие
func (s *Service) DeleteEvent(ctx context.Context, id int64) error {
	s.logger.Info("DeleteEvent: deleting event id=%d", id)

	if err := s.contentRepo.DeleteEvent(ctx, id); err != nil {
		if errors.Is(err, contentRepo.ErrEventNotFound) {
			s.logger.Warn("DeleteEvent: event id=%d not found", id)
			return ErrEventNotFound
		}
		s.logger.Error("DeleteEvent: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteEvent - repository error: %v", ErrInternal, err)
	}

	return nil
}
