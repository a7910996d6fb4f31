// internal/service/restaurant/restaurant_service.go
package restaurant

import (
	"context"
	"database/sql"

	"github.com/sudipjangam/userfeast-manager/internal/domain/restaurant"

	"go.uber.org/zap"
)

type RestaurantService struct {
	repo   restaurant.Repository
	logger *zap.Logger
}

func NewRestaurantService(repo restaurant.Repository, logger *zap.Logger) *RestaurantService {
	return &RestaurantService{repo: repo, logger: logger}
}

// CreateRestaurant creates a new tenant
func (s *RestaurantService) CreateRestaurant(ctx context.Context, req *restaurant.CreateRequest) (*restaurant.Restaurant, error) {
	rest := &restaurant.Restaurant{
		Name:    req.Name,
		Address: sql.NullString{String: req.Address, Valid: req.Address != ""},
		Email:   sql.NullString{String: req.Email, Valid: req.Email != ""},
		Phone:   sql.NullString{String: req.Phone, Valid: req.Phone != ""},
	}

	if err := s.repo.Create(ctx, rest); err != nil {
		s.logger.Error("failed to create restaurant", zap.Error(err))
		return nil, err
	}

	s.logger.Info("restaurant created",
		zap.String("restaurant_id", rest.ID),
		zap.String("name", rest.Name),
	)

	return rest, nil
}

// GetRestaurant retrieves a restaurant by ID
func (s *RestaurantService) GetRestaurant(ctx context.Context, id string) (*restaurant.Restaurant, error) {
	return s.repo.FindByID(ctx, id)
}

// ListRestaurants retrieves restaurants with search and pagination
func (s *RestaurantService) ListRestaurants(ctx context.Context, filters *restaurant.ListFilters) (*restaurant.ListResponse, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = 20
	}
	if filters.PageSize > 100 {
		filters.PageSize = 100
	}

	restaurants, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / filters.PageSize
	if int(total)%filters.PageSize > 0 {
		totalPages++
	}

	return &restaurant.ListResponse{
		Restaurants: restaurants,
		Total:       total,
		Page:        filters.Page,
		PageSize:    filters.PageSize,
		TotalPages:  totalPages,
	}, nil
}

// UpdateRestaurant updates a restaurant's details
func (s *RestaurantService) UpdateRestaurant(ctx context.Context, id string, req *restaurant.UpdateRequest) (*restaurant.Restaurant, error) {
	rest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		rest.Name = req.Name
	}
	if req.Address != nil {
		rest.Address = sql.NullString{String: *req.Address, Valid: *req.Address != ""}
	}
	if req.Email != nil {
		rest.Email = sql.NullString{String: *req.Email, Valid: *req.Email != ""}
	}
	if req.Phone != nil {
		rest.Phone = sql.NullString{String: *req.Phone, Valid: *req.Phone != ""}
	}

	if err := s.repo.Update(ctx, id, rest); err != nil {
		return nil, err
	}

	s.logger.Info("restaurant updated", zap.String("restaurant_id", id))
	return rest, nil
}

// DeleteRestaurant deletes a tenant. Its subscription row is removed by
// the store's cascading delete.
func (s *RestaurantService) DeleteRestaurant(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("restaurant deleted", zap.String("restaurant_id", id))
	return nil
}
