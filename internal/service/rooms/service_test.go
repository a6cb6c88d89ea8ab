package rooms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	roomRepo "github.com/m04kA/ESJ-BookingService/internal/infra/storage/room"
)

type fakeRepo struct {
	rooms   []*domain.Room
	listErr error
}

func (f *fakeRepo) Create(_ context.Context, room *domain.Room) (*domain.Room, error) {
	created := *room
	created.ID = int64(len(f.rooms) + 1)
	f.rooms = append(f.rooms, &created)
	return &created, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	for _, room := range f.rooms {
		if room.ID == id {
			return room, nil
		}
	}
	return nil, roomRepo.ErrRoomNotFound
}

func (f *fakeRepo) List(_ context.Context) ([]*domain.Room, error) {
	return f.rooms, f.listErr
}

func (f *fakeRepo) Update(_ context.Context, id int64, room *domain.Room) (*domain.Room, error) {
	for i, existing := range f.rooms {
		if existing.ID == id {
			updated := *room
			updated.ID = id
			f.rooms[i] = &updated
			return &updated, nil
		}
	}
	return nil, roomRepo.ErrRoomNotFound
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	for i, existing := range f.rooms {
		if existing.ID == id {
			f.rooms = append(f.rooms[:i], f.rooms[i+1:]...)
			return nil
		}
	}
	return roomRepo.ErrRoomNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRoom() *domain.Room {
	return &domain.Room{
		Name:       "Doble Estándar",
		Price:      75,
		MaxGuests:  2,
		TotalUnits: 2,
		Visible:    true,
	}
}

func TestList_VisibilityFilter(t *testing.T) {
	repo := &fakeRepo{rooms: []*domain.Room{
		{ID: 1, Name: "Doble", Visible: true},
		{ID: 2, Name: "Suite", Visible: false},
		{ID: 3, Name: "Individual", Visible: true},
	}}
	svc := NewService(repo, nopLogger{})

	public, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, public, 2)

	admin, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, admin, 3)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Room)
	}{
		{"missing name", func(r *domain.Room) { r.Name = "" }},
		{"negative price", func(r *domain.Room) { r.Price = -1 }},
		{"zero max guests", func(r *domain.Room) { r.MaxGuests = 0 }},
		{"negative units", func(r *domain.Room) { r.TotalUnits = -1 }},
	}

	svc := NewService(&fakeRepo{}, nopLogger{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := validRoom()
			tt.mutate(room)

			_, err := svc.Create(context.Background(), room)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_ZeroUnitsAllowed(t *testing.T) {
	// Категорию можно завести заранее, до ввода номеров в эксплуатацию
	svc := NewService(&fakeRepo{}, nopLogger{})

	room := validRoom()
	room.TotalUnits = 0

	created, err := svc.Create(context.Background(), room)

	require.NoError(t, err)
	assert.Equal(t, 0, created.TotalUnits)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	_, err := svc.Update(context.Background(), 42, validRoom())

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestDelete(t *testing.T) {
	repo := &fakeRepo{rooms: []*domain.Room{{ID: 1, Name: "Doble"}}}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrRoomNotFound)
}
