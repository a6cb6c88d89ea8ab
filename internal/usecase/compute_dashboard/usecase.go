package compute_dashboard

import (
	"context"
	"fmt"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// UseCase use case расчета аналитического дашборда.
// Чистое вычисление над снапшотом записей: входы не мутируются,
// состояния между вызовами нет, параллельные вызовы безопасны.
type UseCase struct {
	roomRepo          RoomRepository
	hotelResRepo      HotelReservationRepository
	restaurantResRepo RestaurantReservationRepository
	menuRepo          MenuRepository
	timeProvider      TimeProvider
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	hotelResRepo HotelReservationRepository,
	restaurantResRepo RestaurantReservationRepository,
	menuRepo MenuRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:          roomRepo,
		hotelResRepo:      hotelResRepo,
		restaurantResRepo: restaurantResRepo,
		menuRepo:          menuRepo,
		timeProvider:      &RealTimeProvider{},
		logger:            logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестирования)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case расчета дашборда
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.ReferenceDate.IsZero() {
		uc.logger.Warn("ComputeDashboard: reference date is required")
		return nil, fmt.Errorf("%w: reference date is required", ErrInvalidInput)
	}

	referenceDate := dateOnly(req.ReferenceDate)

	// 1. Загружаем снапшоты всех коллекций
	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("ComputeDashboard: failed to load rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to load rooms: %v", ErrInternal, err)
	}

	hotelReservations, err := uc.hotelResRepo.List(ctx, nil)
	if err != nil {
		uc.logger.Error("ComputeDashboard: failed to load hotel reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to load hotel reservations: %v", ErrInternal, err)
	}

	restaurantReservations, err := uc.restaurantResRepo.List(ctx, nil)
	if err != nil {
		uc.logger.Error("ComputeDashboard: failed to load restaurant reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to load restaurant reservations: %v", ErrInternal, err)
	}

	menuItems, err := uc.menuRepo.ListItems(ctx)
	if err != nil {
		uc.logger.Error("ComputeDashboard: failed to load menu items: %v", err)
		return nil, fmt.Errorf("%w: failed to load menu items: %v", ErrInternal, err)
	}

	// 2. Разбиение по статусу: единственный общий шаг, остальные
	// вычисления читают подтвержденное подмножество независимо
	p := partitionByStatus(hotelReservations)

	// 3. Окно ближайших заездов привязано к wall clock, не к выбранной дате
	today := dateOnly(uc.timeProvider.Now())

	occupancy := roomOccupancy(rooms, p.confirmed, referenceDate)

	resp := &Response{
		Hotel: HotelStats{
			TotalReservations:     len(hotelReservations),
			ConfirmedReservations: len(p.confirmed),
			PendingReservations:   len(p.pending),
			CancelledReservations: len(p.cancelled),
			TotalRevenue:          totalRevenue(p.confirmed),
			AverageStay:           averageStay(p.confirmed),
			RoomOccupancy:         occupancy,
			MonthlyData:           monthlyTrend(p.confirmed, referenceDate),
			UpcomingArrivals:      upcomingArrivals(p.confirmed, rooms, today),
		},
		Restaurant:   restaurantStats(restaurantReservations),
		Summary:      summary(rooms, p.confirmed, occupancy, menuItems),
		SelectedDate: referenceDate,
	}

	uc.logger.Info("ComputeDashboard: date=%s hotel_reservations=%d confirmed=%d revenue=%.2f",
		referenceDate.Format(domain.DateFormat), len(hotelReservations),
		len(p.confirmed), resp.Hotel.TotalRevenue)

	return resp, nil
}
