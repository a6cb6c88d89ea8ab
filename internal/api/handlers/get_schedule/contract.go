package get_schedule

import (
	"context"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	resolveSchedule "github.com/m04kA/ESJ-BookingService/internal/usecase/resolve_schedule"
)

// ResolveScheduleUseCase интерфейс use case доступности на дату
type ResolveScheduleUseCase interface {
	Execute(ctx context.Context, req *resolveSchedule.Request) (*resolveSchedule.Response, error)
}

// ScheduleService интерфейс сервиса недельного расписания
type ScheduleService interface {
	List(ctx context.Context) ([]*domain.ScheduleDay, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
