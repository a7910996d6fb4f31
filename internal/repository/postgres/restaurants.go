// internal/repository/postgres/restaurants.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sudipjangam/userfeast-manager/internal/domain/restaurant"
	xerrors "github.com/sudipjangam/userfeast-manager/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
)

type RestaurantRepository struct {
	db *pgxpool.Pool
}

func NewRestaurantRepository(db *pgxpool.Pool) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// Create creates a new restaurant
func (r *RestaurantRepository) Create(ctx context.Context, rest *restaurant.Restaurant) error {
	query := `
		INSERT INTO restaurants (id, name, address, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	if rest.ID == "" {
		rest.ID = ulid.Make().String()
	}

	err := r.db.QueryRow(
		ctx, query,
		rest.ID, rest.Name, rest.Address, rest.Email, rest.Phone,
	).Scan(&rest.CreatedAt, &rest.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create restaurant: %w", err)
	}

	return nil
}

// FindByID retrieves a restaurant by ID
func (r *RestaurantRepository) FindByID(ctx context.Context, id string) (*restaurant.Restaurant, error) {
	query := `
		SELECT id, name, address, email, phone, created_at, updated_at
		FROM restaurants
		WHERE id = $1
	`

	var rest restaurant.Restaurant
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rest.ID, &rest.Name, &rest.Address, &rest.Email, &rest.Phone,
		&rest.CreatedAt, &rest.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find restaurant: %w", err)
	}

	return &rest, nil
}

// List retrieves restaurants with search and pagination
func (r *RestaurantRepository) List(ctx context.Context, filters *restaurant.ListFilters) ([]restaurant.Restaurant, int64, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR address ILIKE $%d OR email ILIKE $%d OR phone ILIKE $%d)",
			argPos, argPos, argPos, argPos))
		args = append(args, "%"+filters.Search+"%")
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM restaurants %s", whereClause)
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count restaurants: %w", err)
	}

	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = 20
	}

	offset := (filters.Page - 1) * filters.PageSize

	query := fmt.Sprintf(`
		SELECT id, name, address, email, phone, created_at, updated_at
		FROM restaurants
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argPos, argPos+1)

	args = append(args, filters.PageSize, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := []restaurant.Restaurant{}
	for rows.Next() {
		var rest restaurant.Restaurant
		err := rows.Scan(
			&rest.ID, &rest.Name, &rest.Address, &rest.Email, &rest.Phone,
			&rest.CreatedAt, &rest.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, rest)
	}

	return restaurants, total, rows.Err()
}

// Update updates a restaurant
func (r *RestaurantRepository) Update(ctx context.Context, id string, rest *restaurant.Restaurant) error {
	query := `
		UPDATE restaurants
		SET name = $1, address = $2, email = $3, phone = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := r.db.Exec(ctx, query, rest.Name, rest.Address, rest.Email, rest.Phone, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update restaurant: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// Delete deletes a restaurant. The subscription row, if any, goes with
// it via ON DELETE CASCADE.
func (r *RestaurantRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM restaurants WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete restaurant: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// Exists checks whether a restaurant exists
func (r *RestaurantRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM restaurants WHERE id = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, id).Scan(&exists)
	return exists, err
}
