package admin_login

import (
	authService "github.com/m04kA/ESJ-BookingService/internal/service/auth"
)

// AuthService интерфейс сервиса аутентификации администратора
type AuthService interface {
	Login(username, password string) (*authService.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
