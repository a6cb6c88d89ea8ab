package resolve_schedule

import (
	"time"

	"github.com/m04kA/ESJ-BookingService/pkg/types"
)

// Request модель запроса доступности ресторана на дату
type Request struct {
	Date time.Time // календарная дата, время игнорируется
}

// Response модель ответа с доступными слотами на дату
type Response struct {
	Date           time.Time
	IsOpen         bool
	DayName        string
	LunchSlots     []types.TimeString
	DinnerSlots    []types.TimeString
	AvailableSlots []types.TimeString // конкатенация обед ++ ужин, порядок сохранен
}
