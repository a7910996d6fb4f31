// internal/domain/profile/dto.go
package profile

// CreateRequest creates a new console user profile.
type CreateRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Role         string `json:"role" binding:"required"`
	RestaurantID string `json:"restaurant_id"`
}

// UpdateRequest updates a profile.
type UpdateRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Role         string  `json:"role"`
	RestaurantID *string `json:"restaurant_id"`
}

// ListResponse is a paged profile listing.
type ListResponse struct {
	Profiles   []Profile `json:"profiles"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}
