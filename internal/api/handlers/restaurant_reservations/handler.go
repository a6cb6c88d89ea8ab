package restaurant_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ESJ-BookingService/internal/api/handlers"
	reservationsService "github.com/m04kA/ESJ-BookingService/internal/service/reservations"
	createRestaurantReservation "github.com/m04kA/ESJ-BookingService/internal/usecase/create_restaurant_reservation"
)

const (
	msgInvalidRequestBody  = "cuerpo de la petición no válido"
	msgInvalidDateOrTime   = "formato de fecha u hora no válido, se espera YYYY-MM-DD y HH:MM"
	msgInvalidInput        = "datos de la reserva no válidos"
	msgRestaurantClosed    = "el restaurante está cerrado en la fecha seleccionada"
	msgInvalidTimeSlot     = "la hora seleccionada no está disponible ese día"
	msgReservationNotFound = "reserva no encontrada"
	msgInvalidStatus       = "estado de reserva no válido"
	msgInvalidTransition   = "solo se pueden confirmar o cancelar reservas pendientes"
	msgInvalidID           = "identificador de reserva no válido"
)

type Handler struct {
	createUseCase CreateReservationUseCase
	service       ReservationsService
	logger        Logger
}

func NewHandler(createUseCase CreateReservationUseCase, service ReservationsService, logger Logger) *Handler {
	return &Handler{
		createUseCase: createUseCase,
		service:       service,
		logger:        logger,
	}
}

// HandleCreate POST /api/v1/restaurant-reservations
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurant-reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /restaurant-reservations - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.createUseCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createRestaurantReservation.ErrInvalidInput):
			h.logger.Warn("POST /restaurant-reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createRestaurantReservation.ErrRestaurantClosed):
			h.logger.Warn("POST /restaurant-reservations - Restaurant closed on %s", req.Date)
			handlers.RespondBadRequest(w, msgRestaurantClosed)

		case errors.Is(err, createRestaurantReservation.ErrInvalidTimeSlot):
			h.logger.Warn("POST /restaurant-reservations - Time %s not offered on %s", req.Time, req.Date)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		default:
			h.logger.Error("POST /restaurant-reservations - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /restaurant-reservations - Reservation created: id=%d", result.Reservation.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainReservation(result.Reservation))
}

// HandleList GET /api/v1/restaurant-reservations?status=pending
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	var status *string
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = &raw
	}

	reservations, err := h.service.ListRestaurant(r.Context(), status)
	if err != nil {
		if errors.Is(err, reservationsService.ErrInvalidStatus) {
			h.logger.Warn("GET /restaurant-reservations - Invalid status filter")
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /restaurant-reservations - Failed to list reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainReservationList(reservations))
}

// HandleUpdateStatus PATCH /api/v1/restaurant-reservations/{id}/status
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /restaurant-reservations/{id}/status - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /restaurant-reservations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	reservation, err := h.service.UpdateRestaurantStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("PATCH /restaurant-reservations/{id}/status - Reservation id=%d not found", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservationsService.ErrInvalidStatus):
			h.logger.Warn("PATCH /restaurant-reservations/{id}/status - Invalid status %q for id=%d", req.Status, id)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reservationsService.ErrInvalidTransition):
			h.logger.Warn("PATCH /restaurant-reservations/{id}/status - Invalid transition to %q for id=%d", req.Status, id)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /restaurant-reservations/{id}/status - Failed to update id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /restaurant-reservations/{id}/status - Reservation id=%d is now %s", id, reservation.Status)
	handlers.RespondJSON(w, http.StatusOK, FromDomainReservation(reservation))
}
