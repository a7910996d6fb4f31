// internal/repository/postgres/profiles.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sudipjangam/userfeast-manager/internal/domain/profile"
	xerrors "github.com/sudipjangam/userfeast-manager/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile
func (r *ProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (id, first_name, last_name, role, restaurant_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	err := r.db.QueryRow(
		ctx, query,
		p.ID, p.FirstName, p.LastName, p.Role, p.RestaurantID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

// FindByID retrieves a profile by ID
func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*profile.Profile, error) {
	query := `
		SELECT id, first_name, last_name, role, restaurant_id, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	var p profile.Profile
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.Role, &p.RestaurantID,
		&p.CreatedAt, &p.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return &p, nil
}

// List retrieves profiles with search, role filter and pagination
func (r *ProfileRepository) List(ctx context.Context, filters *profile.ListFilters) ([]profile.Profile, int64, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(first_name ILIKE $%d OR last_name ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filters.Search+"%")
		argPos++
	}

	if filters.Role != "" {
		conditions = append(conditions, fmt.Sprintf("role = $%d", argPos))
		args = append(args, filters.Role)
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM profiles %s", whereClause)
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = 20
	}

	offset := (filters.Page - 1) * filters.PageSize

	query := fmt.Sprintf(`
		SELECT id, first_name, last_name, role, restaurant_id, created_at, updated_at
		FROM profiles
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argPos, argPos+1)

	args = append(args, filters.PageSize, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	profiles := []profile.Profile{}
	for rows.Next() {
		var p profile.Profile
		err := rows.Scan(
			&p.ID, &p.FirstName, &p.LastName, &p.Role, &p.RestaurantID,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}

	return profiles, total, rows.Err()
}

// Update updates a profile
func (r *ProfileRepository) Update(ctx context.Context, id string, p *profile.Profile) error {
	query := `
		UPDATE profiles
		SET first_name = $1, last_name = $2, role = $3, restaurant_id = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := r.db.Exec(ctx, query, p.FirstName, p.LastName, p.Role, p.RestaurantID, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// Delete deletes a profile
func (r *ProfileRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM profiles WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}
