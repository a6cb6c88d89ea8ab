package get_dashboard

import (
	"net/http"
	"time"

	"github.com/m04kA/ESJ-BookingService/internal/api/handlers"
	"github.com/m04kA/ESJ-BookingService/internal/domain"
	computeDashboard "github.com/m04kA/ESJ-BookingService/internal/usecase/compute_dashboard"
)

const (
	msgInvalidDate = "formato de fecha no válido, se espera YYYY-MM-DD"
)

type Handler struct {
	useCase ComputeDashboardUseCase
	logger  Logger
}

func NewHandler(useCase ComputeDashboardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard?date=YYYY-MM-DD
// Без параметра date загрузка считается на сегодня.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	referenceDate := time.Now()

	if rawDate := r.URL.Query().Get("date"); rawDate != "" {
		parsed, err := time.Parse(domain.DateFormat, rawDate)
		if err != nil {
			h.logger.Warn("GET /dashboard - Invalid date %q: %v", rawDate, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		referenceDate = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &computeDashboard.Request{ReferenceDate: referenceDate})
	if err != nil {
		h.logger.Error("GET /dashboard - Failed to compute dashboard: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
