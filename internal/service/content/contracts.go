package content

import (
	"context"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// MenuRepository интерфейс репозитория карты и меню дня
type MenuRepository interface {
	ListItems(ctx context.Context) ([]*domain.MenuItem, error)
	CreateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	UpdateItem(ctx context.Context, id int64, item *domain.MenuItem) (*domain.MenuItem, error)
	DeleteItem(ctx context.Context, id int64) error
	GetDailyMenu(ctx context.Context) (*domain.DailyMenu, error)
	UpdateDailyMenu(ctx context.Context, id int64, menu *domain.DailyMenu) (*domain.DailyMenu, error)
}

// ContentRepository интерфейс репозитория достопримечательностей, событий и галереи
type ContentRepository interface {
	ListAttractions(ctx context.Context, onlyVisible bool) ([]*domain.Attraction, error)
	CreateAttraction(ctx context.Context, a *domain.Attraction) (*domain.Attraction, error)
	UpdateAttraction(ctx context.Context, id int64, a *domain.Attraction) (*domain.Attraction, error)
	DeleteAttraction(ctx context.Context, id int64) error

	ListEvents(ctx context.Context, onlyVisible bool) ([]*domain.Event, error)
	CreateEvent(ctx context.Context, e *domain.Event) (*domain.Event, error)
	UpdateEvent(ctx context.Context, id int64, e *domain.Event) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id int64) error

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
