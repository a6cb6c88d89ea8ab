package content

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	"github.com/m04kA/ESJ-BookingService/pkg/psqlbuilder"
)

var eventColumns = []string{
	"id",
	"name",
	"date_label",
	"description",
	"visible",
}

// ListEvents получает события по возрастанию ID.
// onlyVisible=true: только видимые (публичная выдача).
func (r *Repository) ListEvents(ctx context.Context, onlyVisible bool) ([]*domain.Event, error) {
	selectBuilder := psqlbuilder.Select(eventColumns...).
		From("events").
		OrderBy("id ASC")

	if onlyVisible {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"visible": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListEvents - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEvents - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		var e domain.Event

		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.Description, &e.Visible); err != nil {
			return nil, fmt.Errorf("%w: ListEvents - scan row: %v", ErrScanRow, err)
		}

		events = append(events, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEvents - rows error: %v", ErrScanRow, err)
	}

	return events, nil
}

// CreateEvent создает новое событие
func (r *Repository) CreateEvent(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	query, args, err := psqlbuilder.Insert("events").
		Columns("name", "date_label", "description", "visible").
		Values(e.Name, e.Date, e.Description, e.Visible).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateEvent - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&e.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateEvent - execute insert: %v", ErrExecQuery, err)
	}

	return e, nil
}

// UpdateEvent обновляет событие по ID
func (r *Repository) UpdateEvent(ctx context.Context, id int64, e *domain.Event) (*domain.Event, error) {
	query, args, err := psqlbuilder.Update("events").
		Set("name", e.Name).
		Set("date_label", e.Date).
		Set("description", e.Description).
		Set("visible", e.Visible).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateEvent - build update query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&e.ID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("%w: UpdateEvent - execute update: %v", ErrExecQuery, err)
	}

	return e, nil
}

// DeleteEvent удаляет событие по ID
func (r *Repository) DeleteEvent(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "events", id, ErrEventNotFound)
}
