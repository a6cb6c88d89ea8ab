package attractions

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
	msgInvalidInput       = "datos de la atracción no válidos"
	msgAttractionNotFound = "atracción no encontrada"
	msgInvalidID          = "identificador de atracción no válido"
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

// HandleList GET /api/v1/attractions: только видимые записи
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	attractions, err := h.service.ListAttractions(r.Context(), true)
	if err != nil {
		h.logger.Error("GET /attractions - Failed to list attractions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainAttractionList(attractions))
}

// HandleCreate POST /api/v1/attractions
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req AttractionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /attractions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	attraction, err := h.service.CreateAttraction(r.Context(), req.ToDomainAttraction())
	if err != nil {
		if errors.Is(err, contentService.ErrInvalidInput) {
			h.logger.Warn("POST /attractions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /attractions - Failed to create attraction: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /attractions - Attraction created: id=%d", attraction.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainAttraction(attraction))
}

// HandleUpdate PUT /api/v1/attractions/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /attractions/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req AttractionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /attractions/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	attraction, err := h.service.UpdateAttraction(r.Context(), id, req.ToDomainAttraction())
	if err != nil {
		switch {
		case errors.Is(err, contentService.ErrAttractionNotFound):
			h.logger.Warn("PUT /attractions/{id} - Attraction id=%d not found", id)
			handlers.RespondNotFound(w, msgAttractionNotFound)

		case errors.Is(err, contentService.ErrInvalidInput):
			h.logger.Warn("PUT /attractions/{id} - Invalid input for id=%d: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /attractions/{id} - Failed to update attraction id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /attractions/{id} - Attraction id=%d updated", id)
	handlers.RespondJSON(w, http.StatusOK, FromDomainAttraction(attraction))
}

// HandleDelete DELETE /api/v1/attractions/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /attractions/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteAttraction(r.Context(), id); err != nil {
		if errors.Is(err, contentService.ErrAttractionNotFound) {
			h.logger.Warn("DELETE /attractions/{id} - Attraction id=%d not found", id)
			handlers.RespondNotFound(w, msgAttractionNotFound)
			return
		}
		h.logger.Error("DELETE /attractions/{id} - Failed to delete attraction id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /attractions/{id} - Attraction id=%d deleted", id)
	w.WriteHeader(http.StatusNoContent)
}
