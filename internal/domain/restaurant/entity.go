// internal/domain/restaurant/entity.go
package restaurant

import (
	"context"
	"database/sql"
	"time"
)

// Restaurant is a tenant of the platform.
type Restaurant struct {
	ID      string         `json:"id" db:"id"`
	Name    string         `json:"name" db:"name"`
	Address sql.NullString `json:"address,omitempty" db:"address"`
	Email   sql.NullString `json:"email,omitempty" db:"email"`
	Phone   sql.NullString `json:"phone,omitempty" db:"phone"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ListFilters narrows and pages restaurant listings.
type ListFilters struct {
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// Repository is the persistence contract for restaurants.
type Repository interface {
	Create(ctx context.Context, r *Restaurant) error
	FindByID(ctx context.Context, id string) (*Restaurant, error)
	List(ctx context.Context, filters *ListFilters) ([]Restaurant, int64, error)
	Update(ctx context.Context, id string, r *Restaurant) error
	// Delete removes the restaurant; the store cascades the delete to
	// its subscription row.
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}
