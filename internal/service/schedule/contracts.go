package schedule

import (
	"context"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	"github.com/m04kA/ESJ-BookingService/pkg/types"
)

// ScheduleRepository интерфейс репозитория недельного расписания
type ScheduleRepository interface {
	List(ctx context.Context) ([]*domain.ScheduleDay, error)
	UpdateDay(ctx context.Context, dayOfWeek int, isOpen bool, lunchSlots, dinnerSlots []types.TimeString) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
