package restaurantreservation

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
	"guest_name",
	"phone",
	"email",
	"date",
	"time",
	"guests",
	"zone",
	"notes",
	"status",
	"created_at",
}

// Repository репозиторий бронирований ресторана
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований ресторана
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование столика
func (r *Repository) Create(ctx context.Context, res *domain.RestaurantReservation) (*domain.RestaurantReservation, error) {
	query, args, err := psqlbuilder.Insert("restaurant_reservations").
		Columns(
			"guest_name",
			"phone",
			"email",
			"date",
			"time",
			"guests",
			"zone",
			"notes",
			"status",
		).
		Values(
			res.GuestName,
			res.Phone,
			res.Email,
			res.Date,
			res.Time,
			res.Guests,
			res.Zone,
			res.Notes,
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
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.RestaurantReservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("restaurant_reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var res domain.RestaurantReservation
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.GuestName,
		&res.Phone,
		&res.Email,
		&res.Date,
		&res.Time,
		&res.Guests,
		&res.Zone,
		&res.Notes,
		&res.Status,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}
	res.CreatedAt = createdAt.Time

	return &res, nil
}

// List получает все бронирования ресторана в порядке создания
func (r *Repository) List(ctx context.Context, status *domain.ReservationStatus) ([]*domain.RestaurantReservation, error) {
	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("restaurant_reservations").
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

	reservations := make([]*domain.RestaurantReservation, 0)
	for rows.Next() {
		var res domain.RestaurantReservation
		var createdAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.GuestName,
			&res.Phone,
			&res.Email,
			&res.Date,
			&res.Time,
			&res.Guests,
			&res.Zone,
			&res.Notes,
			&res.Status,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		res.CreatedAt = createdAt.Time

		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// UpdateStatus переводит бронирование в новый статус
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	query, args, err := psqlbuilder.Update("restaurant_reservations").
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
