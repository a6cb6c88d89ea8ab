package domain

import "github.com/m04kA/ESJ-BookingService/pkg/types"

// ScheduleDay represents the restaurant opening configuration for one weekday.
// The weekly table contains exactly one entry per DayOfWeek value in [0,6],
// 0 = Sunday. Slot lists keep the order they were stored with: no implicit
// sorting is performed anywhere, so edits must preserve ascending order.
type ScheduleDay struct {
	DayOfWeek   int // 0 = Domingo ... 6 = Sábado
	DayName     string
	IsOpen      bool
	LunchSlots  []types.TimeString
	DinnerSlots []types.TimeString
}

// DaysInWeek количество записей в корректной недельной таблице
const DaysInWeek = 7
