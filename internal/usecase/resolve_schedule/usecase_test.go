package resolve_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

type fakeScheduleRepo struct {
	days []*domain.ScheduleDay
	err  error
}

func (f *fakeScheduleRepo) List(_ context.Context) ([]*domain.ScheduleDay, error) {
	return f.days, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_ReturnsAvailabilityForDate(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{days: weekSchedule()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.True(t, resp.IsOpen)
	assert.Equal(t, "Domingo", resp.DayName)
	assert.Len(t, resp.AvailableSlots, 5)
}

func TestExecute_ZeroDateRejected(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{days: weekSchedule()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryErrorWrapped(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInternal)
}
