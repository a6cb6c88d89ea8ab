package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	contentRepo "github.com/m04kA/ESJ-BookingService/internal/infra/storage/content"
)

// ListAttractions возвращает достопримечательности.
// С onlyVisible=true скрытые записи отфильтровываются (публичная витрина).
func (s *Service) ListAttractions(ctx context.Context, onlyVisible bool) ([]*domain.Attraction, error) {
	attractions, err := s.contentRepo.ListAttractions(ctx, onlyVisible)
	if err != nil {
		s.logger.Error("ListAttractions: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAttractions - repository error: %v", ErrInternal, err)
	}

	return attractions, nil
}

// CreateAttraction создает новую достопримечательность
func (s *Service) CreateAttraction(ctx context.Context, a *domain.Attraction) (*domain.Attraction, error) {
	s.logger.Info("CreateAttraction: creating attraction name=%s", a.Name)

	if a.Name == "" {
		s.logger.Warn("CreateAttraction: name is required")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	created, err := s.contentRepo.CreateAttraction(ctx, a)
	if err != nil {
		s.logger.Error("CreateAttraction: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateAttraction - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateAttraction: created attraction id=%d", created.ID)
	return created, nil
}

// UpdateAttraction обновляет достопримечательность
func (s *Service) UpdateAttraction(ctx context.Context, id int64, a *domain.Attraction) (*domain.Attraction, error) {
	s.logger.Info("UpdateAttraction: updating attraction id=%d", id)

	if a.Name == "" {
		s.logger.Warn("UpdateAttraction: name is required for id=%d", id)
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	updated, err := s.contentRepo.UpdateAttraction(ctx, id, a)
	if err != nil {
		if errors.Is(err, contentRepo.ErrAttractionNotFound) {
			s.logger.Warn("UpdateAttraction: attraction id=%d not found", id)
			return nil, ErrAttractionNotFound
		}
		s.logger.Error("UpdateAttraction: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateAttraction - repository error: %v", ErrInternal, err)
	}

	return updated, nil
}

// DeleteAttraction удаляет достопримечательность
func (s *Service) DeleteAttraction(ctx context.Context, id int64) error {
	s.logger.Info("DeleteAttraction: deleting attraction id=%d", id)

	if err := s.contentRepo.DeleteAttraction(ctx, id); err != nil {
		if errors.Is(err, contentRepo.ErrAttractionNotFound) {
			s.logger.Warn("DeleteAttraction: attraction id=%d not found", id)
			return ErrAttractionNotFound
		}
		s.logger.Error("DeleteAttraction: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteAttraction - repository error: %v", ErrInternal, err)
	}

	return nil
}
