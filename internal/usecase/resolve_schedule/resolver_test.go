package resolve_schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	"github.com/m04kA/ESJ-BookingService/pkg/types"
)

func slots(ss ...string) []types.TimeString {
	return types.TimeStrings(ss)
}

func weekSchedule() []*domain.ScheduleDay {
	return []*domain.ScheduleDay{
		{DayOfWeek: 0, DayName: "Domingo", IsOpen: true, LunchSlots: slots("13:00", "14:00", "15:00"), DinnerSlots: slots("20:00", "21:00")},
		{DayOfWeek: 1, DayName: "Lunes", IsOpen: false, LunchSlots: slots("13:00", "14:00"), DinnerSlots: slots("20:00")},
		{DayOfWeek: 2, DayName: "Martes", IsOpen: true, LunchSlots: slots("13:00"), DinnerSlots: slots("20:00", "21:00", "22:00")},
	}
}

func TestResolveAvailability_OpenDay(t *testing.T) {
	// 2025-06-22: воскресенье
	date := time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC)

	got := resolveAvailability(date, weekSchedule())

	assert.True(t, got.IsOpen)
	assert.Equal(t, "Domingo", got.DayName)
	assert.Equal(t, slots("13:00", "14:00", "15:00"), got.LunchSlots)
	assert.Equal(t, slots("20:00", "21:00"), got.DinnerSlots)
	assert.Equal(t, slots("13:00", "14:00", "15:00", "20:00", "21:00"), got.AvailableSlots)
}

func TestResolveAvailability_ClosedDayHidesConfiguredSlots(t *testing.T) {
	// 2025-06-23: понедельник: закрыт, хотя слоты сконфигурированы
	date := time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC)

	got := resolveAvailability(date, weekSchedule())

	assert.False(t, got.IsOpen)
	assert.Equal(t, "Lunes", got.DayName)
	assert.Equal(t, []types.TimeString{}, got.LunchSlots)
	assert.Equal(t, []types.TimeString{}, got.DinnerSlots)
	assert.Equal(t, []types.TimeString{}, got.AvailableSlots)
}

func TestResolveAvailability_MissingDayFailsClosed(t *testing.T) {
	// 2025-06-25: среда, записи для dayOfWeek=3 в таблице нет
	date := time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC)

	got := resolveAvailability(date, weekSchedule())

	assert.False(t, got.IsOpen)
	assert.Equal(t, "Desconocido", got.DayName)
	assert.Empty(t, got.AvailableSlots)
	assert.NotNil(t, got.LunchSlots)
	assert.NotNil(t, got.DinnerSlots)
}

func TestResolveAvailability_SlotOrderPreserved(t *testing.T) {
	// Намеренно невозрастающий порядок: резолвер не пересортировывает
	days := []*domain.ScheduleDay{
		{DayOfWeek: 2, DayName: "Martes", IsOpen: true,
			LunchSlots:  slots("14:00", "13:00"),
			DinnerSlots: slots("21:00", "20:00")},
	}
	date := time.Date(2025, 6, 24, 0, 0, 0, 0, time.UTC)

	got := resolveAvailability(date, days)

	assert.Equal(t, slots("14:00", "13:00", "21:00", "20:00"), got.AvailableSlots)
}

func TestResolveAvailability_WeekdayConvention(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		wantName string
	}{
		{"sunday is day zero", time.Date(2025, 6, 29, 0, 0, 0, 0, time.UTC), "Domingo"},
		{"tuesday is day two", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), "Martes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveAvailability(tt.date, weekSchedule())
			assert.Equal(t, tt.wantName, got.DayName)
		})
	}
}

func TestResolveAvailability_TimeOfDayIgnored(t *testing.T) {
	morning := time.Date(2025, 6, 22, 8, 15, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 22, 23, 59, 0, 0, time.UTC)

	assert.Equal(t,
		resolveAvailability(morning, weekSchedule()),
		resolveAvailability(evening, weekSchedule()))
}
