package events

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
	msgInvalidInput       = "datos del evento no válidos"
	msgEventNotFound      = "evento no encontrado"
	msgInvalidID          = "identificador de evento no válido"
)

type Handler struct {
	service ContentService
	logger  Logger
}

func NewHandler(service ContentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/events: только видимые записи
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListEvents(r.Context(), true)
	if err != nil {
		h.logger.Error("GET /events - Failed to list events: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainEventList(events))
}

// HandleCreate POST /api/v1/events
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	event, err := h.service.CreateEvent(r.Context(), req.ToDomainEvent())
	if err != nil {
		if errors.Is(err, contentService.ErrInvalidInput) {
			h.logger.Warn("POST /events - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /events - Failed to create event: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /events - Event created: id=%d", event.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainEvent(event))
}

// HandleUpdate PUT /api/v1/events/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /events/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req EventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /events/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	event, err := h.service.UpdateEvent(r.Context(), id, req.ToDomainEvent())
	if err != nil {
		switch {
		case errors.Is(err, contentService.ErrEventNotFound):
			h.logger.Warn("PUT /events/{id} - Event id=%d not found", id)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, contentService.ErrInvalidInput):
			h.logger.Warn("PUT /events/{id} - Invalid input for id=%d: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /events/{id} - Failed to update event id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /events/{id} - Event id=%d updated", id)
	handlers.RespondJSON(w, http.StatusOK, FromDomainEvent(event))
}

// HandleDelete DELETE /api/v1/events/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /events/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteEvent(r.Context(), id); err != nil {
		if errors.Is(err, contentService.ErrEventNotFound) {
			h.logger.Warn("DELETE /events/{id} - Event id=%d not found", id)
			handlers.RespondNotFound(w, msgEventNotFound)
			return
		}
		h.logger.Error("DELETE /events/{id} - Failed to delete event id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /events/{id} - Event id=%d deleted", id)
	w.WriteHeader(http.StatusNoContent)
}
