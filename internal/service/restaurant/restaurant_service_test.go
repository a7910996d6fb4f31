// internal/service/restaurant/restaurant_service_test.go
package restaurant

import (
	"context"
	"testing"

	"github.com/sudipjangam/userfeast-manager/internal/domain/restaurant"
	xerrors "github.com/sudipjangam/userfeast-manager/internal/pkg/errors"
	"github.com/sudipjangam/userfeast-manager/internal/testutil"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type RestaurantServiceSuite struct {
	suite.Suite

	store   *testutil.InMemoryRestaurantStore
	service *RestaurantService
}

func TestRestaurantService(t *testing.T) {
	suite.Run(t, new(RestaurantServiceSuite))
}

func (s *RestaurantServiceSuite) SetupTest() {
	s.store = testutil.NewInMemoryRestaurantStore()
	s.service = NewRestaurantService(s.store, zap.NewNop())
}

func (s *RestaurantServiceSuite) seedRestaurant(name, address string) *restaurant.Restaurant {
	rest, err := s.service.CreateRestaurant(context.Background(), &restaurant.CreateRequest{
		Name:    name,
		Address: address,
	})
	s.Require().NoError(err)
	return rest
}

func (s *RestaurantServiceSuite) TestCreateRestaurant() {
	rest, err := s.service.CreateRestaurant(context.Background(), &restaurant.CreateRequest{
		Name:  "Spice Garden",
		Email: "owner@spicegarden.example",
	})
	s.NoError(err)
	s.NotEmpty(rest.ID)
	s.Equal("Spice Garden", rest.Name)
	s.True(rest.Email.Valid)
	s.False(rest.Address.Valid, "empty optional fields stay null")
}

func (s *RestaurantServiceSuite) TestGetRestaurantNotFound() {
	_, err := s.service.GetRestaurant(context.Background(), "rest_missing")
	s.ErrorIs(err, xerrors.ErrNotFound)
}

func (s *RestaurantServiceSuite) TestListRestaurantsSearch() {
	s.seedRestaurant("Spice Garden", "12 Rose Street")
	s.seedRestaurant("Ocean Breeze", "5 Harbour Road")
	s.seedRestaurant("Garden Bistro", "9 Hill Lane")

	result, err := s.service.ListRestaurants(context.Background(), &restaurant.ListFilters{Search: "garden"})
	s.NoError(err)
	s.Equal(int64(2), result.Total)
	s.Len(result.Restaurants, 2)
}

func (s *RestaurantServiceSuite) TestListRestaurantsPaginationDefaults() {
	s.seedRestaurant("Spice Garden", "")

	result, err := s.service.ListRestaurants(context.Background(), &restaurant.ListFilters{Page: 0, PageSize: 0})
	s.NoError(err)
	s.Equal(1, result.Page)
	s.Equal(20, result.PageSize)
	s.Equal(1, result.TotalPages)
}

func (s *RestaurantServiceSuite) TestListRestaurantsPageSizeCap() {
	s.seedRestaurant("Spice Garden", "")

	result, err := s.service.ListRestaurants(context.Background(), &restaurant.ListFilters{Page: 1, PageSize: 500})
	s.NoError(err)
	s.Equal(100, result.PageSize)
}

func (s *RestaurantServiceSuite) TestUpdateRestaurantPartial() {
	rest := s.seedRestaurant("Spice Garden", "12 Rose Street")

	phone := "+254700000000"
	updated, err := s.service.UpdateRestaurant(context.Background(), rest.ID, &restaurant.UpdateRequest{
		Phone: &phone,
	})
	s.NoError(err)
	s.Equal("Spice Garden", updated.Name, "unset fields keep their values")
	s.Equal("12 Rose Street", updated.Address.String)
	s.True(updated.Phone.Valid)
	s.Equal(phone, updated.Phone.String)
}

func (s *RestaurantServiceSuite) TestUpdateRestaurantClearsField() {
	rest := s.seedRestaurant("Spice Garden", "12 Rose Street")

	empty := ""
	updated, err := s.service.UpdateRestaurant(context.Background(), rest.ID, &restaurant.UpdateRequest{
		Address: &empty,
	})
	s.NoError(err)
	s.False(updated.Address.Valid, "explicit empty string nulls the field")
}

func (s *RestaurantServiceSuite) TestUpdateRestaurantNotFound() {
	_, err := s.service.UpdateRestaurant(context.Background(), "rest_missing", &restaurant.UpdateRequest{Name: "X"})
	s.ErrorIs(err, xerrors.ErrNotFound)
}

func (s *RestaurantServiceSuite) TestDeleteRestaurant() {
	rest := s.seedRestaurant("Spice Garden", "")

	s.NoError(s.service.DeleteRestaurant(context.Background(), rest.ID))

	_, err := s.service.GetRestaurant(context.Background(), rest.ID)
	s.ErrorIs(err, xerrors.ErrNotFound)

	s.ErrorIs(s.service.DeleteRestaurant(context.Background(), rest.ID), xerrors.ErrNotFound)
}
