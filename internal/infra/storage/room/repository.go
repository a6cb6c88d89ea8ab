package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	"github.com/m04kA/ESJ-BookingService/pkg/dbmetrics"
	"github.com/m04kA/ESJ-BookingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс исполнения запросов (реализуется *sql.DB и *dbmetrics.DB)
type DBExecutor = dbmetrics.DBExecutor

var roomColumns = []string{
	"id",
	"name",
	"description",
	"price",
	"max_guests",
	"total_units",
	"amenities",
	"images",
	"main_image",
	"visible",
}

// Repository репозиторий категорий номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория категорий номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую категорию номеров
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	query, args, err := psqlbuilder.Insert("rooms").
		Columns(
			"name",
			"description",
			"price",
			"max_guests",
			"total_units",
			"amenities",
			"images",
			"main_image",
			"visible",
		).
		Values(
			room.Name,
			room.Description,
			room.Price,
			room.MaxGuests,
			room.TotalUnits,
			pq.Array(room.Amenities),
			pq.Array(room.Images),
			room.MainImage,
			room.Visible,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&room.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return room, nil
}

// GetByID получает категорию номеров по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

// List получает все категории номеров, отсортированные по ID
func (r *Repository) List(ctx context.Context) ([]*domain.Room, error) {
	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// Update обновляет категорию номеров по ID
func (r *Repository) Update(ctx context.Context, id int64, room *domain.Room) (*domain.Room, error) {
	query, args, err := psqlbuilder.Update("rooms").
		Set("name", room.Name).
		Set("description", room.Description).
		Set("price", room.Price).
		Set("max_guests", room.MaxGuests).
		Set("total_units", room.TotalUnits).
		Set("amenities", pq.Array(room.Amenities)).
		Set("images", pq.Array(room.Images)).
		Set("main_image", room.MainImage).
		Set("visible", room.Visible).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&room.ID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return room, nil
}

// Delete удаляет категорию номеров по ID.
// Бронирования, ссылающиеся на удалённую категорию, остаются: потребители
// обязаны переживать несуществующий room_id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var room domain.Room
	var amenities, images pq.StringArray

	err := row.Scan(
		&room.ID,
		&room.Name,
		&room.Description,
		&room.Price,
		&room.MaxGuests,
		&room.TotalUnits,
		&amenities,
		&images,
		&room.MainImage,
		&room.Visible,
	)
	if err != nil {
		return nil, err
	}

	room.Amenities = amenities
	room.Images = images

	return &room, nil
}
