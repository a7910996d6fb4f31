// internal/handlers/restaurant/restaurant_handler.go
package restaurant

import (
	"errors"
	"net/http"

	"github.com/sudipjangam/userfeast-manager/internal/domain/restaurant"
	xerrors "github.com/sudipjangam/userfeast-manager/internal/pkg/errors"
	"github.com/sudipjangam/userfeast-manager/internal/pkg/response"
	service "github.com/sudipjangam/userfeast-manager/internal/service/restaurant"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	restaurantService *service.RestaurantService
}

func NewRestaurantHandler(restaurantService *service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// ListRestaurants retrieves restaurants with search and pagination
func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	var filters restaurant.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid query parameters", err)
		return
	}

	result, err := h.restaurantService.ListRestaurants(c.Request.Context(), &filters)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list restaurants", err)
		return
	}

	response.Success(c, http.StatusOK, "restaurants retrieved", result)
}

// GetRestaurant retrieves a restaurant by ID
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	rest, err := h.restaurantService.GetRestaurant(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "restaurant not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to get restaurant", err)
		return
	}

	response.Success(c, http.StatusOK, "restaurant retrieved", rest)
}

// CreateRestaurant creates a new restaurant
func (h *RestaurantHandler) CreateRestaurant(c *gin.Context) {
	var req restaurant.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	rest, err := h.restaurantService.CreateRestaurant(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to create restaurant", err)
		return
	}

	response.Success(c, http.StatusCreated, "restaurant created", rest)
}

// UpdateRestaurant updates a restaurant
func (h *RestaurantHandler) UpdateRestaurant(c *gin.Context) {
	var req restaurant.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	rest, err := h.restaurantService.UpdateRestaurant(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "restaurant not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to update restaurant", err)
		return
	}

	response.Success(c, http.StatusOK, "restaurant updated", rest)
}

// DeleteRestaurant deletes a restaurant
func (h *RestaurantHandler) DeleteRestaurant(c *gin.Context) {
	if err := h.restaurantService.DeleteRestaurant(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "restaurant not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to delete restaurant", err)
		return
	}

	response.Success(c, http.StatusOK, "restaurant deleted", nil)
}
