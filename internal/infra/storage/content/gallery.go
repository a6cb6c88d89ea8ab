package content

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	"github.com/m04kA/ESJ-BookingService/pkg/psqlbuilder"
)

var galleryColumns = []string{
	"id",
	"title",
	"description",
	"url",
	"category",
	"visible",
	"sort_order",
}

// ListGalleryImages получает изображения галереи по возрастанию sort_order.
// onlyVisible=true: только видимые (публичная выдача).
func (r *Repository) ListGalleryImages(ctx context.Context, onlyVisible bool) ([]*domain.GalleryImage, error) {
	selectBuilder := psqlbuilder.Select(galleryColumns...).
		From("gallery_images").
		OrderBy("sort_order ASC, id ASC")

	if onlyVisible {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"visible": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListGalleryImages - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListGalleryImages - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	images := make([]*domain.GalleryImage, 0)
	for rows.Next() {
		var img domain.GalleryImage

		err := rows.Scan(
			&img.ID,
			&img.Title,
			&img.Description,
			&img.URL,
			&img.Category,
			&img.Visible,
			&img.Order,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListGalleryImages - scan row: %v", ErrScanRow, err)
		}

		images = append(images, &img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListGalleryImages - rows error: %v", ErrScanRow, err)
	}

	return images, nil
}

// CreateGalleryImage создает новое изображение галереи,
// назначая ему следующий порядковый номер.
func (r *Repository) CreateGalleryImage(ctx context.Context, img *domain.GalleryImage) (*domain.GalleryImage, error) {
	query, args, err := psqlbuilder.Insert("gallery_images").
		Columns("title", "description", "url", "category", "visible", "sort_order").
		Values(
			img.Title,
			img.Description,
			img.URL,
			img.Category,
			img.Visible,
			squirrel.Expr("(SELECT COALESCE(MAX(sort_order), 0) + 1 FROM gallery_images)"),
		).
		Suffix("RETURNING id, sort_order").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateGalleryImage - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&img.ID, &img.Order); err != nil {
		return nil, fmt.Errorf("%w: CreateGalleryImage - execute insert: %v", ErrExecQuery, err)
	}

	return img, nil
}

// UpdateGalleryImage обновляет изображение галереи по ID
func (r *Repository) UpdateGalleryImage(ctx context.Context, id int64, img *domain.GalleryImage) (*domain.GalleryImage, error) {
	query, args, err := psqlbuilder.Update("gallery_images").
		Set("title", img.Title).
		Set("description", img.Description).
		Set("url", img.URL).
		Set("category", img.Category).
		Set("visible", img.Visible).
		Set("sort_order", img.Order).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateGalleryImage - build update query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&img.ID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrImageNotFound
		}
		return nil, fmt.Errorf("%w: UpdateGalleryImage - execute update: %v", ErrExecQuery, err)
	}

	return img, nil
}

// DeleteGalleryImage удаляет изображение галереи по ID
func (r *Repository) DeleteGalleryImage(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "gallery_images", id, ErrImageNotFound)
}
