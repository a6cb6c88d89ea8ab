package schedule

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	"github.com/m04kA/ESJ-BookingService/pkg/dbmetrics"
	"github.com/m04kA/ESJ-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/ESJ-BookingService/pkg/types"
)

// DBExecutor интерфейс исполнения запросов (реализуется *sql.DB и *dbmetrics.DB)
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий недельного расписания ресторана
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает все 7 записей недельного расписания по возрастанию дня недели.
// Слоты возвращаются в том порядке, в котором были сохранены: сортировка
// внутри дня нигде не выполняется.
func (r *Repository) List(ctx context.Context) ([]*domain.ScheduleDay, error) {
	query, args, err := psqlbuilder.Select(
		"day_of_week",
		"day_name",
		"is_open",
		"lunch_slots",
		"dinner_slots",
	).
		From("restaurant_schedule").
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]*domain.ScheduleDay, 0, domain.DaysInWeek)
	for rows.Next() {
		var day domain.ScheduleDay
		var lunch, dinner pq.StringArray

		err := rows.Scan(
			&day.DayOfWeek,
			&day.DayName,
			&day.IsOpen,
			&lunch,
			&dinner,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		day.LunchSlots = types.TimeStrings(lunch)
		day.DinnerSlots = types.TimeStrings(dinner)

		days = append(days, &day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}

// UpdateDay обновляет конфигурацию одного дня недели.
// Списки слотов записываются как есть, без переупорядочивания.
func (r *Repository) UpdateDay(ctx context.Context, dayOfWeek int, isOpen bool, lunchSlots, dinnerSlots []types.TimeString) error {
	query, args, err := psqlbuilder.Update("restaurant_schedule").
		Set("is_open", isOpen).
		Set("lunch_slots", pq.Array(types.Strings(lunchSlots))).
		Set("dinner_slots", pq.Array(types.Strings(dinnerSlots))).
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateDay - build update query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateDay - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateDay - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrDayNotFound
	}

	return nil
}
