package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ESJ-BookingService/internal/api/handlers"
	scheduleService "github.com/m04kA/ESJ-BookingService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición no válido"
	msgInvalidDayOfWeek   = "el día de la semana debe estar entre 0 (domingo) y 6 (sábado)"
	msgInvalidSlot        = "formato de hora no válido, se espera HH:MM"
	msgDayNotFound        = "día de la semana no encontrado"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/restaurant/schedule/{dayOfWeek}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dayOfWeek, err := strconv.Atoi(mux.Vars(r)["dayOfWeek"])
	if err != nil {
		h.logger.Warn("PUT /restaurant/schedule - Invalid dayOfWeek: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /restaurant/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	day, err := h.service.UpdateDay(r.Context(), dayOfWeek, req.IsOpen, req.LunchSlots, req.DinnerSlots)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidDayOfWeek):
			h.logger.Warn("PUT /restaurant/schedule - Day %d out of range", dayOfWeek)
			handlers.RespondBadRequest(w, msgInvalidDayOfWeek)

		case errors.Is(err, scheduleService.ErrInvalidSlot):
			h.logger.Warn("PUT /restaurant/schedule - Invalid slot for day %d: %v", dayOfWeek, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, scheduleService.ErrDayNotFound):
			h.logger.Warn("PUT /restaurant/schedule - Day %d not found", dayOfWeek)
			handlers.RespondNotFound(w, msgDayNotFound)

		default:
			h.logger.Error("PUT /restaurant/schedule - Failed to update day %d: %v", dayOfWeek, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /restaurant/schedule - Day %d updated successfully", dayOfWeek)
	handlers.RespondJSON(w, http.StatusOK, FromDomainDay(day))
}
