package gallery

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
	msgInvalidInput       = "datos de la imagen no válidos"
	msgImageNotFound      = "imagen no encontrada"
	msgInvalidID          = "identificador de imagen no válido"
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

// HandleList GET /api/v1/gallery: видимые изображения в порядке поля order
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	images, err := h.service.ListGalleryImages(r.Context(), true)
	if err != nil {
		h.logger.Error("GET /gallery - Failed to list gallery images: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainImageList(images))
}

// HandleCreate POST /api/v1/gallery
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req GalleryImageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /gallery - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	image, err := h.service.CreateGalleryImage(r.Context(), req.ToDomainImage())
	if err != nil {
		if errors.Is(err, contentService.ErrInvalidInput) {
			h.logger.Warn("POST /gallery - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /gallery - Failed to create gallery image: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /gallery - Gallery image created: id=%d", image.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainImage(image))
}

// HandleUpdate PUT /api/v1/gallery/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /gallery/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req GalleryImageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /gallery/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	image, err := h.service.UpdateGalleryImage(r.Context(), id, req.ToDomainImage())
	if err != nil {
		switch {
		case errors.Is(err, contentService.ErrImageNotFound):
			h.logger.Warn("PUT /gallery/{id} - Image id=%d not found", id)
			handlers.RespondNotFound(w, msgImageNotFound)

		case errors.Is(err, contentService.ErrInvalidInput):
			h.logger.Warn("PUT /gallery/{id} - Invalid input for id=%d: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /gallery/{id} - Failed to update image id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /gallery/{id} - Image id=%d updated", id)
	handlers.RespondJSON(w, http.StatusOK, FromDomainImage(image))
}

// HandleDelete DELETE /api/v1/gallery/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /gallery/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteGalleryImage(r.Context(), id); err != nil {
		if errors.Is(err, contentService.ErrImageNotFound) {
			h.logger.Warn("DELETE /gallery/{id} - Image id=%d not found", id)
			handlers.RespondNotFound(w, msgImageNotFound)
			return
		}
		h.logger.Error("DELETE /gallery/{id} - Failed to delete image id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /gallery/{id} - Image id=%d deleted", id)
	w.WriteHeader(http.StatusNoContent)
}
