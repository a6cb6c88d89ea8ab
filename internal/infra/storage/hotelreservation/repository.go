package hotelreservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	"github.com/m04kA/ESJ-BookingService/pkg/dbmetrics"
	"github.com/m04kA/ESJ-BookingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс исполнения запросов (реализуется *sql.DB и *dbmetrics.DB)
type DBExecutor = dbmetrics.DBExecutor

var reservationColumns = []string{
	"id",
	"room_id",
	"guest_name",
	"email",
	"phone",
	"check_in",
	"check_out",
	"guests",
	"total_price",
	"status",
	"created_at",
}

// Repository репозиторий бронирований отеля
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований отеля
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
func (r *Repository) Create(ctx context.Context, res *domain.HotelReservation) (*domain.HotelReservation, error) {
	query, args, err := psqlbuilder.Insert("hotel_reservations").
		Columns(
			"room_id",
			"guest_name",
			"email",
			"phone",
			"check_in",
			"check_out",
			"guests",
			"total_price",
			"status",
		).
		Values(
			res.RoomID,
			res.GuestName,
			res.Email,
			res.Phone,
			res.CheckIn,
			res.CheckOut,
			res.Guests,
			res.TotalPrice,
			res.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	res.CreatedAt = createdAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.HotelReservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("hotel_reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// List получает все бронирования отеля.
// Опционально фильтрует по статусу. Порядок: по ID (порядок создания):
// агрегатор дашборда полагается на стабильный исходный порядок записей.
func (r *Repository) List(ctx context.Context, status *domain.ReservationStatus) ([]*domain.HotelReservation, error) {
	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("hotel_reservations").
		OrderBy("id ASC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.HotelReservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// UpdateStatus переводит бронирование в новый статус.
// Бронирования никогда физически не удаляются: отмена тоже статус.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	query, args, err := psqlbuilder.Update("hotel_reservations").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.HotelReservation, error) {
	var res domain.HotelReservation
	var createdAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.RoomID,
		&res.GuestName,
		&res.Email,
		&res.Phone,
		&res.CheckIn,
		&res.CheckOut,
		&res.Guests,
		&res.TotalPrice,
		&res.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	res.CreatedAt = createdAt.Time

	return &res, nil
}
