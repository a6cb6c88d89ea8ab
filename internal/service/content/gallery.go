package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	contentRepo "github.com/m04kA/ESJ-BookingService/internal/infra/storage/content"
)

// ListGalleryImages возвращает изображения галереи в порядке поля order.
// С onlyVisible=true скрытые записи отфильтровываются (публичная витрина).
func (s *Service) ListGalleryImages(ctx context.Context, onlyVisible bool) ([]*domain.GalleryImage, error) {
	images, err := s.contentRepo.ListGalleryImages(ctx, onlyVisible)
	if err != nil {
		s.logger.Error("ListGalleryImages: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListGalleryImages - repository error: %v", ErrInternal, err)
	}

	return images, nil
}

// CreateGalleryImage добавляет изображение в галерею.
// Порядковый номер назначается автоматически в конец.
func (s *Service) CreateGalleryImage(ctx context.Context, img *domain.GalleryImage) (*domain.GalleryImage, error) {
	s.logger.Info("CreateGalleryImage: creating image title=%s", img.Title)

	if img.URL == "" {
		s.logger.Warn("CreateGalleryImage: url is required")
		return nil, fmt.Errorf("%w: url is required", ErrInvalidInput)
	}

	created, err := s.contentRepo.CreateGalleryImage(ctx, img)
	if err != nil {
		s.logger.Error("CreateGalleryImage: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateGalleryImage - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateGalleryImage: created image id=%d order=%d", created.ID, created.Order)
	return created, nil
}

// UpdateGalleryImage обновляет изображение галереи
func (s *Service) UpdateGalleryImage(ctx context.Context, id int64, img *domain.GalleryImage) (*domain.GalleryImage, error) {
	s.logger.Info("UpdateGalleryImage: updating image id=%d", id)

	if img.URL == "" {
		s.logger.Warn("UpdateGalleryImage: url is required for id=%d", id)
		return nil, fmt.Errorf("%w: url is required", ErrInvalidInput)
	}

	updated, err := s.contentRepo.UpdateGalleryImage(ctx, id, img)
	if err != nil {
		if errors.Is(err, contentRepo.ErrImageNotFound) {
			s.logger.Warn("UpdateGalleryImage: image id=%d not found", id)
			return nil, ErrImageNotFound
		}
		s.logger.Error("UpdateGalleryImage: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateGalleryImage - repository error: %v", ErrInternal, err)
	}

	return updated, nil
}

// DeleteGalleryImage удаляет изображение галереи
func (s *Service) DeleteGalleryImage(ctx context.Context, id int64) error {
	s.logger.Info("DeleteGalleryImage: deleting image id=%d", id)

	if err := s.contentRepo.DeleteGalleryImage(ctx, id); err != nil {
		if errors.Is(err, contentRepo.ErrImageNotFound) {
			s.logger.Warn("DeleteGalleryImage: image id=%d not found", id)
			return ErrImageNotFound
		}
		s.logger.Error("DeleteGalleryImage: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteGalleryImage - repository error: %v", ErrInternal, err)
	}

	return nil
}
