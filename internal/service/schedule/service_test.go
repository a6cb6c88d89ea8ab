package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/ESJ-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/ESJ-BookingService/pkg/types"
)

type fakeRepo struct {
	days      []*domain.ScheduleDay
	listErr   error
	updateErr error

	updatedDay    int
	updatedLunch  []types.TimeString
	updatedDinner []types.TimeString
}

func (f *fakeRepo) List(_ context.Context) ([]*domain.ScheduleDay, error) {
	return f.days, f.listErr
}

func (f *fakeRepo) UpdateDay(_ context.Context, dayOfWeek int, isOpen bool, lunchSlots, dinnerSlots []types.TimeString) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedDay = dayOfWeek
	f.updatedLunch = lunchSlots
	f.updatedDinner = dinnerSlots
	for _, day := range f.days {
		if day.DayOfWeek == dayOfWeek {
			day.IsOpen = isOpen
			day.LunchSlots = lunchSlots
			day.DinnerSlots = dinnerSlots
		}
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{days: []*domain.ScheduleDay{
		{DayOfWeek: 1, DayName: "Lunes", IsOpen: false},
		{DayOfWeek: 2, DayName: "Martes", IsOpen: true,
			LunchSlots: types.TimeStrings([]string{"13:00"})},
	}}
}

func TestUpdateDay_PersistsSlotOrder(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	day, err := svc.UpdateDay(context.Background(), 2, true,
		[]string{"14:00", "13:00", "15:00"},
		[]string{"21:30", "20:00"})

	require.NoError(t, err)
	assert.Equal(t, 2, repo.updatedDay)
	assert.Equal(t, types.TimeStrings([]string{"14:00", "13:00", "15:00"}), repo.updatedLunch)
	assert.Equal(t, types.TimeStrings([]string{"21:30", "20:00"}), repo.updatedDinner)
	assert.Equal(t, "Martes", day.DayName)
	assert.Equal(t, types.TimeStrings([]string{"14:00", "13:00", "15:00"}), day.LunchSlots)
}

func TestUpdateDay_InvalidDayOfWeek(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	tests := []struct {
		name string
		day  int
	}{
		{"negative", -1},
		{"past saturday", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateDay(context.Background(), tt.day, true, nil, nil)
			assert.ErrorIs(t, err, ErrInvalidDayOfWeek)
		})
	}
}

func TestUpdateDay_InvalidSlotFormat(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	tests := []struct {
		name  string
		slots []string
	}{
		{"not a time", []string{"mediodía"}},
		{"hour out of range", []string{"25:00"}},
		{"missing minutes", []string{"13"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateDay(context.Background(), 2, true, tt.slots, nil)
			assert.ErrorIs(t, err, ErrInvalidSlot)
		})
	}
}

func TestUpdateDay_DayNotFound(t *testing.T) {
	repo := newFakeRepo()
	repo.updateErr = scheduleRepo.ErrDayNotFound
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateDay(context.Background(), 3, true, nil, nil)

	assert.ErrorIs(t, err, ErrDayNotFound)
}

func TestUpdateDay_ClosingDayKeepsSlots(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	day, err := svc.UpdateDay(context.Background(), 2, false, []string{"13:00"}, nil)

	require.NoError(t, err)
	assert.False(t, day.IsOpen)
	assert.Equal(t, types.TimeStrings([]string{"13:00"}), day.LunchSlots)
}

func TestList_ReturnsWeeklyTable(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	days, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, days, 2)
}
