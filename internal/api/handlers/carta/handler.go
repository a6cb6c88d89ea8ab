package carta

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ESJ-BookingService/internal/api/handlers"
	contentService "github.com/m04kA/ESJ-BookingService/internal/service/content"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición no válido"
	msgInvalidInput       = "datos del plato no válidos"
	msgItemNotFound       = "plato no encontrado"
	msgInvalidID          = "identificador de plato no válido"
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

// HandleList GET /api/v1/carta
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListMenuItems(r.Context())
	if err != nil {
		h.logger.Error("GET /carta - Failed to list menu items: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainItemList(items))
}

// HandleCreate POST /api/v1/carta
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req MenuItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /carta - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.CreateMenuItem(r.Context(), req.ToDomainItem())
	if err != nil {
		if errors.Is(err, contentService.ErrInvalidInput) {
			h.logger.Warn("POST /carta - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /carta - Failed to create menu item: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /carta - Menu item created: id=%d", item.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainItem(item))
}

// HandleUpdate PUT /api/v1/carta/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /carta/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req MenuItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /carta/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.UpdateMenuItem(r.Context(), id, req.ToDomainItem())
	if err != nil {
		switch {
		case errors.Is(err, contentService.ErrItemNotFound):
			h.logger.Warn("PUT /carta/{id} - Menu item id=%d not found", id)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, contentService.ErrInvalidInput):
			h.logger.Warn("PUT /carta/{id} - Invalid input for id=%d: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /carta/{id} - Failed to update menu item id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /carta/{id} - Menu item id=%d updated", id)
	handlers.RespondJSON(w, http.StatusOK, FromDomainItem(item))
}

// HandleDelete DELETE /api/v1/carta/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /carta/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteMenuItem(r.Context(), id); err != nil {
		if errors.Is(err, contentService.ErrItemNotFound) {
			h.logger.Warn("DELETE /carta/{id} - Menu item id=%d not found", id)
			handlers.RespondNotFound(w, msgItemNotFound)
			return
		}
		h.logger.Error("DELETE /carta/{id} - Failed to delete menu item id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /carta/{id} - Menu item id=%d deleted", id)
	w.WriteHeader(http.StatusNoContent)
}
