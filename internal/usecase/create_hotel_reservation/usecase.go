package create_hotel_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	roomRepo "github.com/m04kA/ESJ-BookingService/internal/infra/storage/room"
)

// UseCase use case создания бронирования отеля из публичной формы
type UseCase struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateHotelReservation: room=%d guest=%s check_in=%s check_out=%s guests=%d",
		req.RoomID, req.GuestName,
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateHotelReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем категорию номеров
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateHotelReservation: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateHotelReservation: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Проверяем вместимость номера
	if req.Guests > room.MaxGuests {
		uc.logger.Warn("CreateHotelReservation: %d guests exceed capacity %d of room id=%d",
			req.Guests, room.MaxGuests, room.ID)
		return nil, ErrTooManyGuests
	}

	// 4. Считаем итоговую цену: ночи × цена за ночь.
	// Цена хранится в бронировании избыточно и дальше не пересчитывается.
	reservation := &domain.HotelReservation{
		RoomID:    room.ID,
		GuestName: req.GuestName,
		Email:     req.Email,
		Phone:     req.Phone,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Guests:    req.Guests,
		Status:    domain.StatusPending,
	}
	reservation.TotalPrice = float64(reservation.Nights()) * room.Price

	// 5. Создаем бронирование в статусе pending; подтверждает администратор
	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		uc.logger.Error("CreateHotelReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateHotelReservation: created reservation id=%d total_price=%.2f",
		created.ID, created.TotalPrice)

	return &Response{Reservation: created}, nil
}
