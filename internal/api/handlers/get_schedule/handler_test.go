package get_schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	resolveSchedule "github.com/m04kA/ESJ-BookingService/internal/usecase/resolve_schedule"
	"github.com/m04kA/ESJ-BookingService/pkg/types"
)

type fakeUseCase struct {
	resp *resolveSchedule.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *resolveSchedule.Request) (*resolveSchedule.Response, error) {
	return f.resp, f.err
}

type fakeScheduleService struct {
	days []*domain.ScheduleDay
	err  error
}

func (f *fakeScheduleService) List(_ context.Context) ([]*domain.ScheduleDay, error) {
	return f.days, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_WithoutDateReturnsWeeklyTable(t *testing.T) {
	svc := &fakeScheduleService{days: []*domain.ScheduleDay{
		{DayOfWeek: 0, DayName: "Domingo", IsOpen: true,
			LunchSlots: types.TimeStrings([]string{"13:00", "14:00"})},
		{DayOfWeek: 1, DayName: "Lunes", IsOpen: false},
	}}
	h := NewHandler(&fakeUseCase{}, svc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/restaurant/schedule", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body ScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Schedule, 2)
	assert.Equal(t, "Domingo", body.Schedule[0].DayName)
	assert.Equal(t, []string{"13:00", "14:00"}, body.Schedule[0].LunchSlots)
	assert.False(t, body.Schedule[1].IsOpen)
}

func TestHandle_WithDateReturnsAvailability(t *testing.T) {
	uc := &fakeUseCase{resp: &resolveSchedule.Response{
		IsOpen:         true,
		DayName:        "Domingo",
		LunchSlots:     types.TimeStrings([]string{"13:00"}),
		DinnerSlots:    types.TimeStrings([]string{"20:00"}),
		AvailableSlots: types.TimeStrings([]string{"13:00", "20:00"}),
	}}
	h := NewHandler(uc, &fakeScheduleService{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/restaurant/schedule?date=2025-06-22", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.IsOpen)
	assert.Equal(t, []string{"13:00", "20:00"}, body.AvailableSlots)
}

func TestHandle_InvalidDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, &fakeScheduleService{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/restaurant/schedule?date=22-06-2025", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
