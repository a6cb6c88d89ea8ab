package get_schedule

import (
	"github.com/m04kA/ESJ-BookingService/internal/domain"
	resolveSchedule "github.com/m04kA/ESJ-BookingService/internal/usecase/resolve_schedule"
	"github.com/m04kA/ESJ-BookingService/pkg/types"
)

// AvailabilityResponse доступность ресторана на конкретную дату
type AvailabilityResponse struct {
	Date           string   `json:"date"`
	IsOpen         bool     `json:"isOpen"`
	DayName        string   `json:"dayName"`
	LunchSlots     []string `json:"lunchSlots"`
	DinnerSlots    []string `json:"dinnerSlots"`
	AvailableSlots []string `json:"availableSlots"`
}

// ScheduleDayResponse конфигурация одного дня недели
type ScheduleDayResponse struct {
	DayOfWeek   int      `json:"dayOfWeek"`
	DayName     string   `json:"dayName"`
	IsOpen      bool     `json:"isOpen"`
	LunchSlots  []string `json:"lunchSlots"`
	DinnerSlots []string `json:"dinnerSlots"`
}

// ScheduleResponse полная недельная таблица
type ScheduleResponse struct {
	Schedule []ScheduleDayResponse `json:"schedule"`
}

// FromUseCaseResponse конвертирует результат use case в HTTP ответ
func FromUseCaseResponse(resp *resolveSchedule.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		IsOpen:         resp.IsOpen,
		DayName:        resp.DayName,
		LunchSlots:     types.Strings(resp.LunchSlots),
		DinnerSlots:    types.Strings(resp.DinnerSlots),
		AvailableSlots: types.Strings(resp.AvailableSlots),
	}
}

// FromDomainSchedule конвертирует недельную таблицу в HTTP ответ
func FromDomainSchedule(days []*domain.ScheduleDay) *ScheduleResponse {
	resp := &ScheduleResponse{Schedule: make([]ScheduleDayResponse, 0, len(days))}
	for _, day := range days {
		resp.Schedule = append(resp.Schedule, ScheduleDayResponse{
			DayOfWeek:   day.DayOfWeek,
			DayName:     day.DayName,
			IsOpen:      day.IsOpen,
			LunchSlots:  types.Strings(day.LunchSlots),
			DinnerSlots: types.Strings(day.DinnerSlots),
		})
	}
	return resp
}
