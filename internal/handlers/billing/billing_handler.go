// internal/handlers/billing/billing_handler.go
package billing

import (
	"errors"
	"net/http"

	"github.com/sudipjangam/userfeast-manager/internal/domain/billing"
	xerrors "github.com/sudipjangam/userfeast-manager/internal/pkg/errors"
	"github.com/sudipjangam/userfeast-manager/internal/pkg/response"
	service "github.com/sudipjangam/userfeast-manager/internal/service/billing"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	subscriptionService *service.SubscriptionService
	planService         *service.PlanService
}

func NewBillingHandler(subscriptionService *service.SubscriptionService, planService *service.PlanService) *BillingHandler {
	return &BillingHandler{
		subscriptionService: subscriptionService,
		planService:         planService,
	}
}

// ========== Plan Catalog ==========

// ListPlans retrieves offerable plans ordered by price
func (h *BillingHandler) ListPlans(c *gin.Context) {
	plans, err := h.subscriptionService.GetOfferablePlans(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list plans", err)
		return
	}

	response.Success(c, http.StatusOK, "plans retrieved", plans)
}

// ========== Subscription Lifecycle ==========

// GetSubscriptionStatus derives the display status for a restaurant
func (h *BillingHandler) GetSubscriptionStatus(c *gin.Context) {
	restaurantID := c.Param("id")

	status, err := h.subscriptionService.GetDisplayStatus(c.Request.Context(), restaurantID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to derive subscription status", err)
		return
	}

	response.Success(c, http.StatusOK, "subscription status retrieved", status)
}

// Subscribe puts a restaurant on a plan
func (h *BillingHandler) Subscribe(c *gin.Context) {
	restaurantID := c.Param("id")

	var req billing.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	sub, err := h.subscriptionService.Subscribe(c.Request.Context(), restaurantID, req.PlanID)
	if err != nil {
		if errors.Is(err, xerrors.ErrPlanNotFound) {
			response.Error(c, http.StatusNotFound, "plan not found or inactive", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to subscribe restaurant", err)
		return
	}

	response.Success(c, http.StatusOK, "restaurant subscribed", sub)
}

// CancelSubscription schedules cancellation at period end
func (h *BillingHandler) CancelSubscription(c *gin.Context) {
	restaurantID := c.Param("id")

	if err := h.subscriptionService.Cancel(c.Request.Context(), restaurantID); err != nil {
		if errors.Is(err, xerrors.ErrNotSubscribed) {
			response.Error(c, http.StatusNotFound, "restaurant has no subscription", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to cancel subscription", err)
		return
	}

	response.Success(c, http.StatusOK, "subscription will lapse at period end", nil)
}

// ReactivateSubscription clears a pending cancellation
func (h *BillingHandler) ReactivateSubscription(c *gin.Context) {
	restaurantID := c.Param("id")

	if err := h.subscriptionService.Reactivate(c.Request.Context(), restaurantID); err != nil {
		if errors.Is(err, xerrors.ErrNotSubscribed) {
			response.Error(c, http.StatusNotFound, "restaurant has no subscription", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to reactivate subscription", err)
		return
	}

	response.Success(c, http.StatusOK, "subscription reactivated", nil)
}

// RenewSubscription rolls the subscription onto its next billing period
func (h *BillingHandler) RenewSubscription(c *gin.Context) {
	restaurantID := c.Param("id")

	sub, err := h.subscriptionService.Renew(c.Request.Context(), restaurantID)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrNotSubscribed):
			response.Error(c, http.StatusNotFound, "restaurant has no subscription", err)
		case errors.Is(err, xerrors.ErrPlanNotFound):
			response.Error(c, http.StatusConflict, "subscribed plan is retired, re-subscribe to a current plan", err)
		default:
			response.Error(c, http.StatusInternalServerError, "failed to renew subscription", err)
		}
		return
	}

	response.Success(c, http.StatusOK, "subscription renewed", sub)
}

// ========== Plan Administration ==========

// CreatePlan creates a new subscription plan
func (h *BillingHandler) CreatePlan(c *gin.Context) {
	var req billing.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	plan, err := h.planService.CreatePlan(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to create plan", err)
		return
	}

	response.Success(c, http.StatusCreated, "plan created", plan)
}

// GetPlan retrieves a plan by ID
func (h *BillingHandler) GetPlan(c *gin.Context) {
	plan, err := h.planService.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "plan not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to get plan", err)
		return
	}

	response.Success(c, http.StatusOK, "plan retrieved", plan)
}

// UpdatePlan updates a plan
func (h *BillingHandler) UpdatePlan(c *gin.Context) {
	var req billing.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	plan, err := h.planService.UpdatePlan(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "plan not found")
			return
		}
		response.Error(c, http.StatusBadRequest, "failed to update plan", err)
		return
	}

	response.Success(c, http.StatusOK, "plan updated", plan)
}

// DeactivatePlan retires a plan from the offerable set
func (h *BillingHandler) DeactivatePlan(c *gin.Context) {
	if err := h.planService.DeactivatePlan(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "plan not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to deactivate plan", err)
		return
	}

	response.Success(c, http.StatusOK, "plan deactivated", nil)
}
