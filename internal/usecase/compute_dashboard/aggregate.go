package compute_dashboard

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// spanishMonths сокращенные испанские названия месяцев для меток сводки
var spanishMonths = [12]string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

// partition разбивает бронирования по статусу.
// Статус: единственный ключ разбиения, фильтрации по датам здесь нет.
type partition struct {
	confirmed []*domain.HotelReservation
	pending   []*domain.HotelReservation
	cancelled []*domain.HotelReservation
}

func partitionByStatus(reservations []*domain.HotelReservation) partition {
	var p partition
	for _, r := range reservations {
		switch r.Status {
		case domain.StatusConfirmed:
			p.confirmed = append(p.confirmed, r)
		case domain.StatusPending:
			p.pending = append(p.pending, r)
		case domain.StatusCancelled:
			p.cancelled = append(p.cancelled, r)
		}
	}
	return p
}

// totalRevenue суммирует totalPrice только по подтвержденным бронированиям.
// Это строгая политика: pending и cancelled в выручку не попадают никогда.
func totalRevenue(confirmed []*domain.HotelReservation) float64 {
	var sum float64
	for _, r := range confirmed {
		sum += r.TotalPrice
	}
	return sum
}

// averageStay средняя длительность проживания в ночах по подтвержденным
// бронированиям. 0 на пустом множестве (не NaN и не ошибка).
func averageStay(confirmed []*domain.HotelReservation) float64 {
	if len(confirmed) == 0 {
		return 0
	}
	var nights int
	for _, r := range confirmed {
		nights += r.Nights()
	}
	return round1(float64(nights) / float64(len(confirmed)))
}

// roomOccupancy считает загрузку каждой категории номеров на выбранную дату.
// Бронирование занимает дату по полуоткрытому правилу checkIn <= d < checkOut:
// день выезда ночь не занимает.
func roomOccupancy(rooms []*domain.Room, confirmed []*domain.HotelReservation, referenceDate time.Time) []RoomOccupancy {
	result := make([]RoomOccupancy, 0, len(rooms))

	for _, room := range rooms {
		var occupied int
		var revenue float64

		for _, r := range confirmed {
			if r.RoomID != room.ID || !r.OccupiesDate(referenceDate) {
				continue
			}
			occupied++
			revenue += r.TotalPrice
		}

		// Переброн возможен, поэтому доступность прижимается к нулю
		available := room.TotalUnits - occupied
		if available < 0 {
			available = 0
		}

		var rate float64
		if room.TotalUnits > 0 {
			rate = float64(occupied) / float64(room.TotalUnits) * 100
		}

		result = append(result, RoomOccupancy{
			RoomName:       room.Name,
			Reservations:   occupied,
			Revenue:        revenue,
			OccupancyRate:  rate,
			AvailableRooms: available,
			TotalRooms:     room.TotalUnits,
		})
	}

	return result
}

// upcomingArrivals выбирает подтвержденные бронирования с заездом в окне
// [today, today+7] (обе границы включительно), сортирует по дате заезда
// по возрастанию (стабильно: исходный порядок сохраняется при равных датах)
// и дополняет каждое именем категории номеров.
//
// Агрегатор не должен падать из-за удаленной категории: если room_id больше
// не разрешается, подставляется синтезированное имя.
func upcomingArrivals(confirmed []*domain.HotelReservation, rooms []*domain.Room, today time.Time) []UpcomingArrival {
	windowEnd := today.AddDate(0, 0, domain.UpcomingArrivalsWindowDays)

	selected := make([]*domain.HotelReservation, 0)
	for _, r := range confirmed {
		if r.CheckIn.Before(today) || r.CheckIn.After(windowEnd) {
			continue
		}
		selected = append(selected, r)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].CheckIn.Before(selected[j].CheckIn)
	})

	roomNames := make(map[int64]string, len(rooms))
	for _, room := range rooms {
		roomNames[room.ID] = room.Name
	}

	arrivals := make([]UpcomingArrival, 0, len(selected))
	for _, r := range selected {
		name, ok := roomNames[r.RoomID]
		if !ok {
			name = fmt.Sprintf("Habitación %d", r.RoomID)
		}
		arrivals = append(arrivals, UpcomingArrival{Reservation: r, RoomName: name})
	}

	return arrivals
}

// monthlyTrend строит помесячную сводку подтвержденной выручки за последние
// domain.MonthlyTrendMonths месяцев, заканчивая месяцем выбранной даты.
// Бронирование попадает в корзину месяца своей даты заезда.
func monthlyTrend(confirmed []*domain.HotelReservation, referenceDate time.Time) []MonthlyPoint {
	points := make([]MonthlyPoint, 0, domain.MonthlyTrendMonths)

	refMonth := time.Date(referenceDate.Year(), referenceDate.Month(), 1, 0, 0, 0, 0, referenceDate.Location())

	for i := domain.MonthlyTrendMonths - 1; i >= 0; i-- {
		monthStart := refMonth.AddDate(0, -i, 0)
		nextMonth := monthStart.AddDate(0, 1, 0)

		var count int
		var revenue float64
		for _, r := range confirmed {
			if r.CheckIn.Before(monthStart) || !r.CheckIn.Before(nextMonth) {
				continue
			}
			count++
			revenue += r.TotalPrice
		}

		points = append(points, MonthlyPoint{
			Month:        fmt.Sprintf("%s %d", spanishMonths[monthStart.Month()-1], monthStart.Year()),
			Reservations: count,
			Revenue:      revenue,
		})
	}

	return points
}

// restaurantStats считает показатели ресторана.
// Средний размер группы считается по ВСЕМ бронированиям независимо от
// статуса: асимметрия с правилом выручки отеля сохранена намеренно.
func restaurantStats(reservations []*domain.RestaurantReservation) RestaurantStats {
	stats := RestaurantStats{TotalReservations: len(reservations)}

	var guests int
	for _, r := range reservations {
		guests += r.Guests
		switch r.Status {
		case domain.StatusConfirmed:
			stats.ConfirmedReservations++
		case domain.StatusPending:
			stats.PendingReservations++
		}
	}

	if len(reservations) > 0 {
		stats.AverageGuests = round1(float64(guests) / float64(len(reservations)))
	}

	return stats
}

// summary считает сводные показатели.
// AvailableRooms намеренно не привязан к дате: общее число юнитов минус
// количество всех подтвержденных бронирований. Скорректированный
// date-scoped вариант доступен отдельным полем.
func summary(rooms []*domain.Room, confirmed []*domain.HotelReservation, occupancy []RoomOccupancy, items []*domain.MenuItem) Summary {
	var s Summary

	for _, room := range rooms {
		s.TotalRooms += room.TotalUnits
	}
	s.AvailableRooms = s.TotalRooms - len(confirmed)

	for _, o := range occupancy {
		s.AvailableRoomsOnDate += o.AvailableRooms
	}

	s.TotalMenuItems = len(items)
	for _, item := range items {
		if item.Available {
			s.ActiveMenuItems++
		}
	}

	return s
}

// round1 округляет до одного знака после запятой
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
