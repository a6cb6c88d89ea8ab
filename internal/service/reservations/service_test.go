package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	hotelRepo "github.com/m04kA/ESJ-BookingService/internal/infra/storage/hotelreservation"
	"github.com/m04kA/ESJ-BookingService/pkg/ptr"
)

type fakeHotelRepo struct {
	byID map[int64]*domain.HotelReservation
	list []*domain.HotelReservation

	updatedID     int64
	updatedStatus domain.ReservationStatus
}

func (f *fakeHotelRepo) GetByID(_ context.Context, id int64) (*domain.HotelReservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, hotelRepo.ErrReservationNotFound
	}
	return res, nil
}

func (f *fakeHotelRepo) List(_ context.Context, status *domain.ReservationStatus) ([]*domain.HotelReservation, error) {
	if status == nil {
		return f.list, nil
	}
	filtered := make([]*domain.HotelReservation, 0)
	for _, r := range f.list {
		if r.Status == *status {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (f *fakeHotelRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	if _, ok := f.byID[id]; !ok {
		return hotelRepo.ErrReservationNotFound
	}
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

type fakeRestaurantRepo struct{}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, _ int64) (*domain.RestaurantReservation, error) {
	return &domain.RestaurantReservation{ID: 1, Status: domain.StatusPending}, nil
}

func (f *fakeRestaurantRepo) List(_ context.Context, _ *domain.ReservationStatus) ([]*domain.RestaurantReservation, error) {
	return nil, nil
}

func (f *fakeRestaurantRepo) UpdateStatus(_ context.Context, _ int64, _ domain.ReservationStatus) error {
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingReservation(id int64) *domain.HotelReservation {
	return &domain.HotelReservation{
		ID:       id,
		RoomID:   1,
		Status:   domain.StatusPending,
		CheckIn:  time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 6, 28, 0, 0, 0, 0, time.UTC),
	}
}

func TestUpdateHotelStatus_PendingTransitions(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   domain.ReservationStatus
	}{
		{"pending to confirmed", "confirmed", domain.StatusConfirmed},
		{"pending to cancelled", "cancelled", domain.StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeHotelRepo{byID: map[int64]*domain.HotelReservation{1: pendingReservation(1)}}
			svc := NewService(repo, &fakeRestaurantRepo{}, nopLogger{})

			got, err := svc.UpdateHotelStatus(context.Background(), 1, tt.status)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status)
			assert.Equal(t, tt.want, repo.updatedStatus)
		})
	}
}

func TestUpdateHotelStatus_RejectedTransitions(t *testing.T) {
	tests := []struct {
		name    string
		current domain.ReservationStatus
		next    string
	}{
		{"confirmed is final", domain.StatusConfirmed, "cancelled"},
		{"cancelled is final", domain.StatusCancelled, "confirmed"},
		{"pending back to pending", domain.StatusPending, "pending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := pendingReservation(1)
			res.Status = tt.current
			repo := &fakeHotelRepo{byID: map[int64]*domain.HotelReservation{1: res}}
			svc := NewService(repo, &fakeRestaurantRepo{}, nopLogger{})

			_, err := svc.UpdateHotelStatus(context.Background(), 1, tt.next)

			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestUpdateHotelStatus_UnknownStatus(t *testing.T) {
	repo := &fakeHotelRepo{byID: map[int64]*domain.HotelReservation{1: pendingReservation(1)}}
	svc := NewService(repo, &fakeRestaurantRepo{}, nopLogger{})

	_, err := svc.UpdateHotelStatus(context.Background(), 1, "deleted")

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateHotelStatus_NotFound(t *testing.T) {
	repo := &fakeHotelRepo{byID: map[int64]*domain.HotelReservation{}}
	svc := NewService(repo, &fakeRestaurantRepo{}, nopLogger{})

	_, err := svc.UpdateHotelStatus(context.Background(), 42, "confirmed")

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUpdateRestaurantStatus_PendingConfirmed(t *testing.T) {
	svc := NewService(&fakeHotelRepo{}, &fakeRestaurantRepo{}, nopLogger{})

	got, err := svc.UpdateRestaurantStatus(context.Background(), 1, "confirmed")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
}

func TestListHotel_StatusFilter(t *testing.T) {
	repo := &fakeHotelRepo{list: []*domain.HotelReservation{
		{ID: 1, Status: domain.StatusPending},
		{ID: 2, Status: domain.StatusConfirmed},
		{ID: 3, Status: domain.StatusPending},
	}}
	svc := NewService(repo, &fakeRestaurantRepo{}, nopLogger{})

	all, err := svc.ListHotel(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pending, err := svc.ListHotel(context.Background(), ptr.Ptr("pending"))
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

func TestListHotel_InvalidStatusFilter(t *testing.T) {
	svc := NewService(&fakeHotelRepo{}, &fakeRestaurantRepo{}, nopLogger{})

	_, err := svc.ListHotel(context.Background(), ptr.Ptr("archived"))

	assert.ErrorIs(t, err, ErrInvalidStatus)
}
