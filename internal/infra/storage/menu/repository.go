package menu

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/ESJ-BookingService/internal/domain"
	"github.com/m04kA/ESJ-BookingService/pkg/dbmetrics"
	"github.com/m04kA/ESJ-BookingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс исполнения запросов (реализуется *sql.DB и *dbmetrics.DB)
type DBExecutor = dbmetrics.DBExecutor

var itemColumns = []string{
	"id",
	"category",
	"name",
	"description",
	"price",
	"available",
	"allergens",
}

// Repository репозиторий карты ресторана и меню дня
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория меню
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListItems получает все блюда карты по возрастанию ID
func (r *Repository) ListItems(ctx context.Context) ([]*domain.MenuItem, error) {
	query, args, err := psqlbuilder.Select(itemColumns...).
		From("menu_items").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.MenuItem, 0)
	for rows.Next() {
		var item domain.MenuItem
		var allergens pq.StringArray

		err := rows.Scan(
			&item.ID,
			&item.Category,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Available,
			&allergens,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListItems - scan row: %v", ErrScanRow, err)
		}
		item.Allergens = allergens

		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListItems - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// CreateItem создает новое блюдо карты
func (r *Repository) CreateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	query, args, err := psqlbuilder.Insert("menu_items").
		Columns("category", "name", "description", "price", "available", "allergens").
		Values(item.Category, item.Name, item.Description, item.Price, item.Available, pq.Array(item.Allergens)).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateItem - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateItem - execute insert: %v", ErrExecQuery, err)
	}

	return item, nil
}

// UpdateItem обновляет блюдо карты по ID
func (r *Repository) UpdateItem(ctx context.Context, id int64, item *domain.MenuItem) (*domain.MenuItem, error) {
	query, args, err := psqlbuilder.Update("menu_items").
		Set("category", item.Category).
		Set("name", item.Name).
		Set("description", item.Description).
		Set("price", item.Price).
		Set("available", item.Available).
		Set("allergens", pq.Array(item.Allergens)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateItem - build update query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&item.ID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("%w: UpdateItem - execute update: %v", ErrExecQuery, err)
	}

	return item, nil
}

// DeleteItem удаляет блюдо карты по ID
func (r *Repository) DeleteItem(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("menu_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteItem - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteItem - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteItem - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// GetDailyMenu получает единственную запись меню дня.
// Составы блюд хранятся как JSONB.
func (r *Repository) GetDailyMenu(ctx context.Context) (*domain.DailyMenu, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"date_label",
		"price",
		"starters",
		"mains",
		"desserts",
		"drink",
		"active",
		"general_allergens",
	).
		From("daily_menu").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDailyMenu - build select query: %v", ErrBuildQuery, err)
	}

	var menu domain.DailyMenu
	var starters, mains, desserts []byte
	var generalAllergens pq.StringArray

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&menu.ID,
		&menu.Date,
		&menu.Price,
		&starters,
		&mains,
		&desserts,
		&menu.Drink,
		&menu.Active,
		&generalAllergens,
	)
	if err == sql.ErrNoRows {
		return nil, ErrDailyMenuNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDailyMenu - scan daily menu: %v", ErrScanRow, err)
	}

	menu.GeneralAllergens = generalAllergens
	if err := unmarshalCourses(starters, &menu.Starters); err != nil {
		return nil, fmt.Errorf("%w: GetDailyMenu - decode starters: %v", ErrScanRow, err)
	}
	if err := unmarshalCourses(mains, &menu.Mains); err != nil {
		return nil, fmt.Errorf("%w: GetDailyMenu - decode mains: %v", ErrScanRow, err)
	}
	if err := unmarshalCourses(desserts, &menu.Desserts); err != nil {
		return nil, fmt.Errorf("%w: GetDailyMenu - decode desserts: %v", ErrScanRow, err)
	}

	return &menu, nil
}

// UpdateDailyMenu обновляет запись меню дня по ID
func (r *Repository) UpdateDailyMenu(ctx context.Context, id int64, menu *domain.DailyMenu) (*domain.DailyMenu, error) {
	starters, err := json.Marshal(menu.Starters)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateDailyMenu - encode starters: %v", ErrBuildQuery, err)
	}
	mains, err := json.Marshal(menu.Mains)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateDailyMenu - encode mains: %v", ErrBuildQuery, err)
	}
	desserts, err := json.Marshal(menu.Desserts)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateDailyMenu - encode desserts: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update("daily_menu").
		Set("date_label", menu.Date).
		Set("price", menu.Price).
		Set("starters", starters).
		Set("mains", mains).
		Set("desserts", desserts).
		Set("drink", menu.Drink).
		Set("active", menu.Active).
		Set("general_allergens", pq.Array(menu.GeneralAllergens)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateDailyMenu - build update query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&menu.ID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrDailyMenuNotFound
		}
		return nil, fmt.Errorf("%w: UpdateDailyMenu - execute update: %v", ErrExecQuery, err)
	}

	return menu, nil
}

func unmarshalCourses(data []byte, dst *[]domain.DailyMenuCourse) error {
	if len(data) == 0 {
		*dst = []domain.DailyMenuCourse{}
		return nil
	}
	return json.Unmarshal(data, dst)
}
