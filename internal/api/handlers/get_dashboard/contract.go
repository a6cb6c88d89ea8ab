package get_dashboard

import (
	"context"

	computeDashboard "github.com/m04kA/ESJ-BookingService/internal/usecase/compute_dashboard"
)

// ComputeDashboardUseCase интерфейс use case расчета дашборда
type ComputeDashboardUseCase interface {
	Execute(ctx context.Context, req *computeDashboard.Request) (*computeDashboard.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
