// internal/domain/restaurant/dto.go
package restaurant

// CreateRequest creates a new restaurant tenant.
type CreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// UpdateRequest updates restaurant contact details.
type UpdateRequest struct {
	Name    string  `json:"name"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
}

// ListResponse is a paged restaurant listing.
type ListResponse struct {
	Restaurants []Restaurant `json:"restaurants"`
	Total       int64        `json:"total"`
	Page        int          `json:"page"`
	PageSize    int          `json:"page_size"`
	TotalPages  int          `json:"total_pages"`
}
