package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	menuRepo "github.com/m04kA/ESJ-BookingService/internal/infra/storage/menu"
)

// ListMenuItems возвращает все блюда карты
func (s *Service) ListMenuItems(ctx context.Context) ([]*domain.MenuItem, error) {
	items, err := s.menuRepo.ListItems(ctx)
	if err != nil {
		s.logger.Error("ListMenuItems: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListMenuItems - repository error: %v", ErrInternal, err)
	}

	return items, nil
}

// CreateMenuItem создает новое блюдо карты
func (s *Service) CreateMenuItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	s.logger.Info("CreateMenuItem: creating item name=%s category=%s", item.Name, item.Category)

	if err := validateMenuItem(item); err != nil {
		s.logger.Warn("CreateMenuItem: validation failed: %v", err)
		return nil, err
	}

	created, err := s.menuRepo.CreateItem(ctx, item)
	if err != nil {
		s.logger.Error("CreateMenuItem: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateMenuItem - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateMenuItem: created item id=%d", created.ID)
	return created, nil
}

// UpdateMenuItem обновляет блюдо карты
func (s *Service) UpdateMenuItem(ctx context.Context, id int64, item *domain.MenuItem) (*domain.MenuItem, error) {
	s.logger.Info("UpdateMenuItem: updating item id=%d", id)

	if err := validateMenuItem(item); err != nil {
		s.logger.Warn("UpdateMenuItem: validation failed for id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.menuRepo.UpdateItem(ctx, id, item)
	if err != nil {
		if errors.Is(err, menuRepo.ErrItemNotFound) {
			s.logger.Warn("UpdateMenuItem: item id=%d not found", id)
			return nil, ErrItemNotFound
		}
		s.logger.Error("UpdateMenuItem: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateMenuItem - repository error: %v", ErrInternal, err)
	}

	return updated, nil
}

// DeleteMenuItem удаляет блюдо карты
func (s *Service) DeleteMenuItem(ctx context.Context, id int64) error {
	s.logger.Info("DeleteMenuItem: deleting item id=%d", id)

	if err := s.menuRepo.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, menuRepo.ErrItemNotFound) {
			s.logger.Warn("DeleteMenuItem: item id=%d not found", id)
			return ErrItemNotFound
		}
		s.logger.Error("DeleteMenuItem: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteMenuItem - repository error: %v", ErrInternal, err)
	}

	return nil
}

// GetDailyMenu возвращает текущее меню дня
func (s *Service) GetDailyMenu(ctx context.Context) (*domain.DailyMenu, error) {
	menu, err := s.menuRepo.GetDailyMenu(ctx)
	if err != nil {
		if errors.Is(err, menuRepo.ErrDailyMenuNotFound) {
			s.logger.Warn("GetDailyMenu: daily menu not found")
			return nil, ErrDailyMenuNotFound
		}
		s.logger.Error("GetDailyMenu: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetDailyMenu - repository error: %v", ErrInternal, err)
	}

	return menu, nil
}

// UpdateDailyMenu обновляет меню дня. Запись единственная и редактируется
// на месте: создание и удаление через API не предусмотрены.
func (s *Service) UpdateDailyMenu(ctx context.Context, menu *domain.DailyMenu) (*domain.DailyMenu, error) {
	s.logger.Info("UpdateDailyMenu: updating daily menu")

	if menu.Price < 0 {
		s.logger.Warn("UpdateDailyMenu: negative price %.2f", menu.Price)
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	current, err := s.menuRepo.GetDailyMenu(ctx)
	if err != nil {
		if errors.Is(err, menuRepo.ErrDailyMenuNotFound) {
			return nil, ErrDailyMenuNotFound
		}
		s.logger.Error("UpdateDailyMenu: failed to load current menu: %v", err)
		return nil, fmt.Errorf("%w: UpdateDailyMenu - repository error: %v", ErrInternal, err)
	}

	updated, err := s.menuRepo.UpdateDailyMenu(ctx, current.ID, menu)
	if err != nil {
		if errors.Is(err, menuRepo.ErrDailyMenuNotFound) {
			return nil, ErrDailyMenuNotFound
		}
		s.logger.Error("UpdateDailyMenu: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateDailyMenu - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateDailyMenu: successfully updated daily menu id=%d", updated.ID)
	return updated, nil
}

// validateMenuItem валидирует данные блюда карты
func validateMenuItem(item *domain.MenuItem) error {
	if item.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if item.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if item.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}
