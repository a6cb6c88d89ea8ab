package gallery

import (
	"context"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// ContentService интерфейс сервиса галереи
type ContentService interface {
	ListGalleryImages(ctx context.Context, onlyVisible bool) ([]*domain.GalleryImage, error)
	CreateGalleryImage(ctx context.Context, img *domain.GalleryImage) (*domain.GalleryImage, error)
	UpdateGalleryImage(ctx context.Context, id int64, img *domain.GalleryImage) (*domain.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
