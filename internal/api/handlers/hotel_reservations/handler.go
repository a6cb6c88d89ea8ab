package hotel_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ESJ-BookingService/internal/api/handlers"
	reservationsService "github.com/m04kA/ESJ-BookingService/internal/service/reservations"
	createHotelReservation "github.com/m04kA/ESJ-BookingService/internal/usecase/create_hotel_reservation"
)

const (
	msgInvalidRequestBody  = "cuerpo de la petición no válido"
	msgInvalidDate         = "formato de fecha no válido, se espera YYYY-MM-DD"
	msgInvalidInput        = "datos de la reserva no válidos"
	msgInvalidDateRange    = "la fecha de salida debe ser posterior a la de entrada"
	msgRoomNotFound        = "habitación no encontrada"
	msgTooManyGuests       = "el número de huéspedes supera la capacidad de la habitación"
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

// HandleCreate POST /api/v1/hotel-reservations
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /hotel-reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /hotel-reservations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.createUseCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createHotelReservation.ErrInvalidDateRange):
			h.logger.Warn("POST /hotel-reservations - Invalid date range: %s to %s", req.CheckIn, req.CheckOut)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createHotelReservation.ErrInvalidInput):
			h.logger.Warn("POST /hotel-reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createHotelReservation.ErrRoomNotFound):
			h.logger.Warn("POST /hotel-reservations - Room id=%d not found", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createHotelReservation.ErrTooManyGuests):
			h.logger.Warn("POST /hotel-reservations - Too many guests: %d for room id=%d", req.Guests, req.RoomID)
			handlers.RespondBadRequest(w, msgTooManyGuests)

		default:
			h.logger.Error("POST /hotel-reservations - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /hotel-reservations - Reservation created: id=%d", result.Reservation.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainReservation(result.Reservation))
}

// HandleList GET /api/v1/hotel-reservations?status=pending
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	var status *string
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = &raw
	}

	reservations, err := h.service.ListHotel(r.Context(), status)
	if err != nil {
		if errors.Is(err, reservationsService.ErrInvalidStatus) {
			h.logger.Warn("GET /hotel-reservations - Invalid status filter")
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /hotel-reservations - Failed to list reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainReservationList(reservations))
}

// HandleUpdateStatus PATCH /api/v1/hotel-reservations/{id}/status
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /hotel-reservations/{id}/status - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /hotel-reservations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	reservation, err := h.service.UpdateHotelStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("PATCH /hotel-reservations/{id}/status - Reservation id=%d not found", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservationsService.ErrInvalidStatus):
			h.logger.Warn("PATCH /hotel-reservations/{id}/status - Invalid status %q for id=%d", req.Status, id)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reservationsService.ErrInvalidTransition):
			h.logger.Warn("PATCH /hotel-reservations/{id}/status - Invalid transition to %q for id=%d", req.Status, id)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /hotel-reservations/{id}/status - Failed to update id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /hotel-reservations/{id}/status - Reservation id=%d is now %s", id, reservation.Status)
	handlers.RespondJSON(w, http.StatusOK, FromDomainReservation(reservation))
}
