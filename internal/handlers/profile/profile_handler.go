// internal/handlers/profile/profile_handler.go
package profile

import (
	"errors"
	"net/http"

	"github.com/sudipjangam/userfeast-manager/internal/domain/profile"
	xerrors "github.com/sudipjangam/userfeast-manager/internal/pkg/errors"
	"github.com/sudipjangam/userfeast-manager/internal/pkg/response"
	service "github.com/sudipjangam/userfeast-manager/internal/service/profile"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ListProfiles retrieves profiles with search, role filter and pagination
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	var filters profile.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid query parameters", err)
		return
	}

	result, err := h.profileService.ListProfiles(c.Request.Context(), &filters)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list profiles", err)
		return
	}

	response.Success(c, http.StatusOK, "profiles retrieved", result)
}

// GetProfile retrieves a profile by ID
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	p, err := h.profileService.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to get profile", err)
		return
	}

	response.Success(c, http.StatusOK, "profile retrieved", p)
}

// CreateProfile creates a new profile
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req profile.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	p, err := h.profileService.CreateProfile(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "restaurant not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to create profile", err)
		return
	}

	response.Success(c, http.StatusCreated, "profile created", p)
}

// UpdateProfile updates a profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req profile.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	p, err := h.profileService.UpdateProfile(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to update profile", err)
		return
	}

	response.Success(c, http.StatusOK, "profile updated", p)
}

// DeleteProfile deletes a profile
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	if err := h.profileService.DeleteProfile(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to delete profile", err)
		return
	}

	response.Success(c, http.StatusOK, "profile deleted", nil)
}
