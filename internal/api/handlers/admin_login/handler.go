package admin_login

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/ESJ-BookingService/internal/api/handlers"
	authService "github.com/m04kA/ESJ-BookingService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición no válido"
	msgInvalidCredentials = "usuario o contraseña incorrectos"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse выданный токен сессии
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"` // ISO 8601
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidCredentials) {
			h.logger.Warn("POST /admin/login - Invalid credentials for username=%s", req.Username)
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		h.logger.Error("POST /admin/login - Login failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/login - Session issued for username=%s", req.Username)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
	})
}
