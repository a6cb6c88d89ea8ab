package menu_del_dia

import (
	"errors"
	"net/http"

	"github.com/m04kA/ESJ-BookingService/internal/api/handlers"
	contentService "github.com/m04kA/ESJ-BookingService/internal/service/content"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición no válido"
	msgInvalidInput       = "datos del menú no válidos"
	msgMenuNotFound       = "menú del día no encontrado"
)

type Handler struct {
	service MenuService
	logger  Logger
}

func NewHandler(service MenuService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGet GET /api/v1/menu-del-dia
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	menu, err := h.service.GetDailyMenu(r.Context())
	if err != nil {
		if errors.Is(err, contentService.ErrDailyMenuNotFound) {
			h.logger.Warn("GET /menu-del-dia - Daily menu not found")
			handlers.RespondNotFound(w, msgMenuNotFound)
			return
		}
		h.logger.Error("GET /menu-del-dia - Failed to get daily menu: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainMenu(menu))
}

// HandleUpdate PUT /api/v1/menu-del-dia
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req DailyMenuRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /menu-del-dia - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	menu, err := h.service.UpdateDailyMenu(r.Context(), req.ToDomainMenu())
	if err != nil {
		switch {
		case errors.Is(err, contentService.ErrDailyMenuNotFound):
			h.logger.Warn("PUT /menu-del-dia - Daily menu not found")
			handlers.RespondNotFound(w, msgMenuNotFound)

		case errors.Is(err, contentService.ErrInvalidInput):
			h.logger.Warn("PUT /menu-del-dia - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /menu-del-dia - Failed to update daily menu: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /menu-del-dia - Daily menu id=%d updated", menu.ID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainMenu(menu))
}
