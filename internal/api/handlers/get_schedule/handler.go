package get_schedule

import (
	"net/http"
	"time"

	"github.com/m04kA/ESJ-BookingService/internal/api/handlers"
	"github.com/m04kA/ESJ-BookingService/internal/domain"
	resolveSchedule "github.com/m04kA/ESJ-BookingService/internal/usecase/resolve_schedule"
)

const (
	msgInvalidDate = "formato de fecha no válido, se espera YYYY-MM-DD"
)

type Handler struct {
	useCase         ResolveScheduleUseCase
	scheduleService ScheduleService
	logger          Logger
}

func NewHandler(useCase ResolveScheduleUseCase, scheduleService ScheduleService, logger Logger) *Handler {
	return &Handler{
		useCase:         useCase,
		scheduleService: scheduleService,
		logger:          logger,
	}
}

// Handle GET /api/v1/restaurant/schedule?date=YYYY-MM-DD
// С параметром date возвращает доступность на дату,
// без него возвращает полную недельную таблицу.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")

	if rawDate == "" {
		days, err := h.scheduleService.List(r.Context())
		if err != nil {
			h.logger.Error("GET /restaurant/schedule - Failed to load schedule: %v", err)
			handlers.RespondInternalError(w)
			return
		}

		handlers.RespondJSON(w, http.StatusOK, FromDomainSchedule(days))
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /restaurant/schedule - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &resolveSchedule.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /restaurant/schedule - Failed to resolve availability for %s: %v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
