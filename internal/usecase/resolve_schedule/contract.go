package resolve_schedule

import (
	"context"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория недельного расписания
type ScheduleRepository interface {
	// List возвращает полную недельную таблицу расписания
	List(ctx context.Context) ([]*domain.ScheduleDay, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
