package resolve_schedule

import (
	"time"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	"github.com/m04kA/ESJ-BookingService/pkg/types"
)

// dayNameUnknown имя дня для невалидной таблицы расписания
const dayNameUnknown = "Desconocido"

// Availability результат разрешения расписания на одну дату
type Availability struct {
	IsOpen         bool
	DayName        string
	LunchSlots     []types.TimeString
	DinnerSlots    []types.TimeString
	AvailableSlots []types.TimeString
}

// resolveAvailability находит запись расписания для дня недели запрошенной даты.
// День недели нормализуется по фиксированному соглашению: 0 = воскресенье.
//
// Слот "доступен" только в смысле часов работы: лимитов мест на слот нет,
// двойное бронирование одного слота возможно намеренно.
//
// Если таблица невалидна (нет записи для дня недели), деградируем до
// "закрыто с пустыми списками": вызывающая сторона (форма бронирования)
// не может восстановиться после жесткой ошибки посреди флоу.
func resolveAvailability(date time.Time, days []*domain.ScheduleDay) Availability {
	weekday := int(date.Weekday()) // time.Sunday == 0

	for _, day := range days {
		if day.DayOfWeek != weekday {
			continue
		}

		// Закрытый день: пустые списки, даже если слоты сконфигурированы
		if !day.IsOpen {
			return Availability{
				IsOpen:         false,
				DayName:        day.DayName,
				LunchSlots:     []types.TimeString{},
				DinnerSlots:    []types.TimeString{},
				AvailableSlots: []types.TimeString{},
			}
		}

		// Слоты копируются как есть: без пересортировки и дедупликации,
		// порядок хранения считается корректным
		lunch := append([]types.TimeString{}, day.LunchSlots...)
		dinner := append([]types.TimeString{}, day.DinnerSlots...)

		available := make([]types.TimeString, 0, len(lunch)+len(dinner))
		available = append(available, lunch...)
		available = append(available, dinner...)

		return Availability{
			IsOpen:         true,
			DayName:        day.DayName,
			LunchSlots:     lunch,
			DinnerSlots:    dinner,
			AvailableSlots: available,
		}
	}

	// Запись для дня недели отсутствует: fail closed
	return Availability{
		IsOpen:         false,
		DayName:        dayNameUnknown,
		LunchSlots:     []types.TimeString{},
		DinnerSlots:    []types.TimeString{},
		AvailableSlots: []types.TimeString{},
	}
}
