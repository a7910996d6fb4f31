// internal/service/profile/profile_service.go
package profile

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sudipjangam/userfeast-manager/internal/domain/profile"
	"github.com/sudipjangam/userfeast-manager/internal/domain/restaurant"
	xerrors "github.com/sudipjangam/userfeast-manager/internal/pkg/errors"

	"go.uber.org/zap"
)

type ProfileService struct {
	repo           profile.Repository
	restaurantRepo restaurant.Repository
	logger         *zap.Logger
}

func NewProfileService(repo profile.Repository, restaurantRepo restaurant.Repository, logger *zap.Logger) *ProfileService {
	return &ProfileService{repo: repo, restaurantRepo: restaurantRepo, logger: logger}
}

// CreateProfile creates a console user profile
func (s *ProfileService) CreateProfile(ctx context.Context, req *profile.CreateRequest) (*profile.Profile, error) {
	if req.RestaurantID != "" {
		exists, err := s.restaurantRepo.Exists(ctx, req.RestaurantID)
		if err != nil {
			return nil, fmt.Errorf("failed to check restaurant: %w", err)
		}
		if !exists {
			return nil, xerrors.Wrap(xerrors.ErrNotFound, "restaurant")
		}
	}

	p := &profile.Profile{
		FirstName:    sql.NullString{String: req.FirstName, Valid: req.FirstName != ""},
		LastName:     sql.NullString{String: req.LastName, Valid: req.LastName != ""},
		Role:         req.Role,
		RestaurantID: sql.NullString{String: req.RestaurantID, Valid: req.RestaurantID != ""},
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("failed to create profile", zap.Error(err))
		return nil, err
	}

	s.logger.Info("profile created",
		zap.String("profile_id", p.ID),
		zap.String("role", p.Role),
	)

	return p, nil
}

// GetProfile retrieves a profile by ID
func (s *ProfileService) GetProfile(ctx context.Context, id string) (*profile.Profile, error) {
	return s.repo.FindByID(ctx, id)
}

// ListProfiles retrieves profiles with search, role filter and pagination
func (s *ProfileService) ListProfiles(ctx context.Context, filters *profile.ListFilters) (*profile.ListResponse, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = 20
	}
	if filters.PageSize > 100 {
		filters.PageSize = 100
	}

	profiles, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / filters.PageSize
	if int(total)%filters.PageSize > 0 {
		totalPages++
	}

	return &profile.ListResponse{
		Profiles:   profiles,
		Total:      total,
		Page:       filters.Page,
		PageSize:   filters.PageSize,
		TotalPages: totalPages,
	}, nil
}

// UpdateProfile updates a profile
func (s *ProfileService) UpdateProfile(ctx context.Context, id string, req *profile.UpdateRequest) (*profile.Profile, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		p.FirstName = sql.NullString{String: *req.FirstName, Valid: *req.FirstName != ""}
	}
	if req.LastName != nil {
		p.LastName = sql.NullString{String: *req.LastName, Valid: *req.LastName != ""}
	}
	if req.Role != "" {
		p.Role = req.Role
	}
	if req.RestaurantID != nil {
		if *req.RestaurantID != "" {
			exists, err := s.restaurantRepo.Exists(ctx, *req.RestaurantID)
			if err != nil {
				return nil, fmt.Errorf("failed to check restaurant: %w", err)
			}
			if !exists {
				return nil, xerrors.Wrap(xerrors.ErrNotFound, "restaurant")
			}
		}
		p.RestaurantID = sql.NullString{String: *req.RestaurantID, Valid: *req.RestaurantID != ""}
	}

	if err := s.repo.Update(ctx, id, p); err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", zap.String("profile_id", id))
	return p, nil
}

// DeleteProfile deletes a profile
func (s *ProfileService) DeleteProfile(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("profile deleted", zap.String("profile_id", id))
	return nil
}
