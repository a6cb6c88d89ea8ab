package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	roomRepo "github.com/m04kA/ESJ-BookingService/internal/infra/storage/room"
)

// Service сервис для работы с категориями номеров
type Service struct {
	repo   RoomRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(repo RoomRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает категории номеров.
// С onlyVisible=true скрытые категории отфильтровываются (публичная витрина).
func (s *Service) List(ctx context.Context, onlyVisible bool) ([]*domain.Room, error) {
	rooms, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if !onlyVisible {
		return rooms, nil
	}

	visible := make([]*domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.Visible {
			visible = append(visible, room)
		}
	}
	return visible, nil
}

// GetByID возвращает категорию номеров по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return room, nil
}

// Create создает новую категорию номеров
func (s *Service) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	s.logger.Info("Create: creating room name=%s", room.Name)

	if err := validateRoom(room); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, room)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created room id=%d", created.ID)
	return created, nil
}

// Update обновляет категорию номеров
func (s *Service) Update(ctx context.Context, id int64, room *domain.Room) (*domain.Room, error) {
	s.logger.Info("Update: updating room id=%d", id)

	if err := validateRoom(room); err != nil {
		s.logger.Warn("Update: validation failed for id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Update: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated room id=%d", id)
	return updated, nil
}

// Delete удаляет категорию номеров
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting room id=%d", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Delete: room id=%d not found", id)
			return ErrRoomNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted room id=%d", id)
	return nil
}

// validateRoom валидирует данные категории номеров
func validateRoom(room *domain.Room) error {
	if room.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if room.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if room.MaxGuests < 1 {
		return fmt.Errorf("%w: maxGuests must be at least 1", ErrInvalidInput)
	}
	if room.TotalUnits < 0 {
		return fmt.Errorf("%w: totalUnits must not be negative", ErrInvalidInput)
	}
	return nil
}
