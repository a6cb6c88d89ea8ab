package rooms

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ESJ-BookingService/internal/api/handlers"
	roomsService "github.com/m04kA/ESJ-BookingService/internal/service/rooms"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición no válido"
	msgInvalidInput       = "datos de la habitación no válidos"
	msgRoomNotFound       = "habitación no encontrada"
	msgInvalidID          = "identificador de habitación no válido"
)

type Handler struct {
	service RoomsService
	logger  Logger
}

func NewHandler(service RoomsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleListPublic GET /api/v1/rooms: только видимые категории
func (h *Handler) HandleListPublic(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.List(r.Context(), true)
	if err != nil {
		h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainRoomList(rooms))
}

// HandleListAdmin GET /api/v1/admin/rooms: все категории, включая скрытые
func (h *Handler) HandleListAdmin(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.List(r.Context(), false)
	if err != nil {
		h.logger.Error("GET /admin/rooms - Failed to list rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainRoomList(rooms))
}

// HandleCreate POST /api/v1/rooms
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req RoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, err := h.service.Create(r.Context(), req.ToDomainRoom())
	if err != nil {
		if errors.Is(err, roomsService.ErrInvalidInput) {
			h.logger.Warn("POST /rooms - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /rooms - Failed to create room: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /rooms - Room created: id=%d", room.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainRoom(room))
}

// HandleUpdate PUT /api/v1/rooms/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /rooms/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req RoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rooms/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, err := h.service.Update(r.Context(), id, req.ToDomainRoom())
	if err != nil {
		switch {
		case errors.Is(err, roomsService.ErrRoomNotFound):
			h.logger.Warn("PUT /rooms/{id} - Room id=%d not found", id)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, roomsService.ErrInvalidInput):
			h.logger.Warn("PUT /rooms/{id} - Invalid input for id=%d: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /rooms/{id} - Failed to update room id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /rooms/{id} - Room id=%d updated", id)
	handlers.RespondJSON(w, http.StatusOK, FromDomainRoom(room))
}

// HandleDelete DELETE /api/v1/rooms/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /rooms/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, roomsService.ErrRoomNotFound) {
			h.logger.Warn("DELETE /rooms/{id} - Room id=%d not found", id)
			handlers.RespondNotFound(w, msgRoomNotFound)
			return
		}
		h.logger.Error("DELETE /rooms/{id} - Failed to delete room id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /rooms/{id} - Room id=%d deleted", id)
	w.WriteHeader(http.StatusNoContent)
}
