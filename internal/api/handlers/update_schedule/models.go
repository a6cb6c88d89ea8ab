package update_schedule

import (
	"github.com/m04kA/ESJ-BookingService/internal/domain"
	"github.com/m04kA/ESJ-BookingService/pkg/types"
)

// UpdateScheduleRequest HTTP request model.
// Порядок слотов сохраняется как есть.
type UpdateScheduleRequest struct {
	IsOpen      bool     `json:"isOpen"`
	LunchSlots  []string `json:"lunchSlots"`
	DinnerSlots []string `json:"dinnerSlots"`
}

// ScheduleDayResponse обновленная конфигурация дня
type ScheduleDayResponse struct {
	DayOfWeek   int      `json:"dayOfWeek"`
	DayName     string   `json:"dayName"`
	IsOpen      bool     `json:"isOpen"`
	LunchSlots  []string `json:"lunchSlots"`
	DinnerSlots []string `json:"dinnerSlots"`
}

// FromDomainDay конвертирует domain модель в HTTP ответ
func FromDomainDay(day *domain.ScheduleDay) *ScheduleDayResponse {
	return &ScheduleDayResponse{
		DayOfWeek:   day.DayOfWeek,
		DayName:     day.DayName,
		IsOpen:      day.IsOpen,
		LunchSlots:  types.Strings(day.LunchSlots),
		DinnerSlots: types.Strings(day.DinnerSlots),
	}
}
