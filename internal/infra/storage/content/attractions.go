package content

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

// Repository репозиторий контента публичного сайта:
// достопримечательности, события и фотогалерея.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория контента
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var attractionColumns = []string{
	"id",
	"name",
	"description",
	"distance",
	"duration",
	"type",
	"images",
	"main_image",
	"visible",
}

// ListAttractions получает достопримечательности по возрастанию ID.
// onlyVisible=true: только видимые (публичная выдача).
func (r *Repository) ListAttractions(ctx context.Context, onlyVisible bool) ([]*domain.Attraction, error) {
	selectBuilder := psqlbuilder.Select(attractionColumns...).
		From("attractions").
		OrderBy("id ASC")

	if onlyVisible {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"visible": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAttractions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAttractions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	attractions := make([]*domain.Attraction, 0)
	for rows.Next() {
		var a domain.Attraction
		var images pq.StringArray

		err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Description,
			&a.Distance,
			&a.Duration,
			&a.Type,
			&images,
			&a.MainImage,
			&a.Visible,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAttractions - scan row: %v", ErrScanRow, err)
		}
		a.Images = images

		attractions = append(attractions, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAttractions - rows error: %v", ErrScanRow, err)
	}

	return attractions, nil
}

// CreateAttraction создает новую достопримечательность
func (r *Repository) CreateAttraction(ctx context.Context, a *domain.Attraction) (*domain.Attraction, error) {
	query, args, err := psqlbuilder.Insert("attractions").
		Columns("name", "description", "distance", "duration", "type", "images", "main_image", "visible").
		Values(a.Name, a.Description, a.Distance, a.Duration, a.Type, pq.Array(a.Images), a.MainImage, a.Visible).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateAttraction - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&a.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateAttraction - execute insert: %v", ErrExecQuery, err)
	}

	return a, nil
}

// UpdateAttraction обновляет достопримечательность по ID
func (r *Repository) UpdateAttraction(ctx context.Context, id int64, a *domain.Attraction) (*domain.Attraction, error) {
	query, args, err := psqlbuilder.Update("attractions").
		Set("name", a.Name).
		Set("description", a.Description).
		Set("distance", a.Distance).
		Set("duration", a.Duration).
		Set("type", a.Type).
		Set("images", pq.Array(a.Images)).
		Set("main_image", a.MainImage).
		Set("visible", a.Visible).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateAttraction - build update query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&a.ID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAttractionNotFound
		}
		return nil, fmt.Errorf("%w: UpdateAttraction - execute update: %v", ErrExecQuery, err)
	}

	return a, nil
}

// DeleteAttraction удаляет достопримечательность по ID
func (r *Repository) DeleteAttraction(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "attractions", id, ErrAttractionNotFound)
}

// deleteByID общий DELETE ... WHERE id = $1 для таблиц контента
func (r *Repository) deleteByID(ctx context.Context, table string, id int64, notFound error) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: delete from %s - build delete query: %v", ErrBuildQuery, table, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: delete from %s - execute delete: %v", ErrExecQuery, table, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: delete from %s - rows affected: %v", ErrExecQuery, table, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}
