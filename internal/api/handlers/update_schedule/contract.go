package update_schedule

import (
	"context"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// ScheduleService интерфейс сервиса недельного расписания
type ScheduleService interface {
	UpdateDay(ctx context.Context, dayOfWeek int, isOpen bool, lunchSlots, dinnerSlots []string) (*domain.ScheduleDay, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
