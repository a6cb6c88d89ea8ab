package create_restaurant_reservation

import (
	"github.com/m04kA/ESJ-BookingService/internal/domain"
	"github.com/m04kA/ESJ-BookingService/pkg/types"
)

// findDay ищет запись расписания по дню недели (0 = воскресенье).
// Возвращает nil, если записи нет.
func findDay(days []*domain.ScheduleDay, dayOfWeek int) *domain.ScheduleDay {
	for _, day := range days {
		if day.DayOfWeek == dayOfWeek {
			return day
		}
	}
	return nil
}

// offersTime возвращает true, если время входит в обеденные или вечерние
// слоты дня
func offersTime(day *domain.ScheduleDay, t types.TimeString) bool {
	for _, slot := range day.LunchSlots {
		if slot == t {
			return true
		}
	}
	for _, slot := range day.DinnerSlots {
		if slot == t {
			return true
		}
	}
	return false
}
