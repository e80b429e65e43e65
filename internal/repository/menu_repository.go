package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tanishkajain081/dabite-restaurant/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const menuColumns = `id, name, description, price, category, available, created_at`

// menuRepository implements the MenuRepository interface using PostgreSQL.
type menuRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuRepository creates a new PostgreSQL-backed menu repository.
func NewMenuRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu").Logger(),
	}
}

// List retrieves all menu items ordered by id ascending.
func (r *menuRepository) List(ctx context.Context) ([]model.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menu items")
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	items := []model.MenuItem{}
	for rows.Next() {
		var item model.MenuItem
		if err := scanMenuItem(rows, &item); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu item row")
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu item rows")
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

// Create inserts a menu item and returns the stored row.
func (r *menuRepository) Create(ctx context.Context, in model.MenuItemInput) (*model.MenuItem, error) {
	query := `
		INSERT INTO menu_items (name, description, price, category, available)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + menuColumns

	var item model.MenuItem
	err := scanMenuItem(
		r.pool.QueryRow(ctx, query, in.Name, in.Description, in.Price.Float64(), in.Category, in.IsAvailable()),
		&item,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("name", in.Name).Msg("failed to create menu item")
		return nil, fmt.Errorf("failed to create menu item: %w", translateError(err))
	}

	r.logger.Debug().Int64("menu_item_id", item.ID).Msg("menu item created")

	return &item, nil
}

// Update overwrites the editable fields of a menu item.
func (r *menuRepository) Update(ctx context.Context, id int64, in model.MenuItemInput) (*model.MenuItem, error) {
	query := `
		UPDATE menu_items
		SET name = $2, description = $3, price = $4, category = $5, available = $6
		WHERE id = $1
		RETURNING ` + menuColumns

	var item model.MenuItem
	err := scanMenuItem(
		r.pool.QueryRow(ctx, query, id, in.Name, in.Description, in.Price.Float64(), in.Category, in.IsAvailable()),
		&item,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("menu_item_id", id).Msg("menu item not found")
			return nil, model.ErrNotFound
		}
		r.logger.Error().Err(err).Int64("menu_item_id", id).Msg("failed to update menu item")
		return nil, fmt.Errorf("failed to update menu item: %w", translateError(err))
	}

	return &item, nil
}

// Delete removes a menu item.
func (r *menuRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("menu_item_id", id).Msg("failed to delete menu item")
		return fmt.Errorf("failed to delete menu item: %w", translateError(err))
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Int64("menu_item_id", id).Msg("menu item not found")
		return model.ErrNotFound
	}

	return nil
}

func scanMenuItem(row pgx.Row, item *model.MenuItem) error {
	return row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.Category,
		&item.Available,
		&item.CreatedAt,
	)
}
