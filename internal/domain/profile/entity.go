// internal/domain/profile/entity.go
package profile

import (
	"context"
	"database/sql"
	"time"
)

// Profile is an admin-console user account. IDs are UUIDs so they can
// mirror the identity provider's user ids one-to-one.
type Profile struct {
	ID           string         `json:"id" db:"id"`
	FirstName    sql.NullString `json:"first_name,omitempty" db:"first_name"`
	LastName     sql.NullString `json:"last_name,omitempty" db:"last_name"`
	Role         string         `json:"role" db:"role"`
	RestaurantID sql.NullString `json:"restaurant_id,omitempty" db:"restaurant_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ListFilters narrows and pages profile listings.
type ListFilters struct {
	Search   string `form:"search"`
	Role     string `form:"role"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// Repository is the persistence contract for profiles.
type Repository interface {
	Create(ctx context.Context, p *Profile) error
	FindByID(ctx context.Context, id string) (*Profile, error)
	List(ctx context.Context, filters *ListFilters) ([]Profile, int64, error)
	Update(ctx context.Context, id string, p *Profile) error
	Delete(ctx context.Context, id string) error
}
