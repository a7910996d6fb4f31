// internal/app/router.go
package app

import (
	billingHandler "github.com/sudipjangam/userfeast-manager/internal/handlers/billing"
	profileHandler "github.com/sudipjangam/userfeast-manager/internal/handlers/profile"
	restaurantHandler "github.com/sudipjangam/userfeast-manager/internal/handlers/restaurant"
	"github.com/sudipjangam/userfeast-manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	BillingHandler    *billingHandler.BillingHandler
	RestaurantHandler *restaurantHandler.RestaurantHandler
	ProfileHandler    *profileHandler.ProfileHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Plan Catalog ====================
	api.GET("/plans", h.BillingHandler.ListPlans)

	// ==================== Authenticated Console Routes ====================
	console := api.Group("")
	console.Use(h.AuthMiddleware.Auth())
	{
		// Restaurants
		restaurants := console.Group("/restaurants")
		{
			restaurants.GET("", h.RestaurantHandler.ListRestaurants)
			restaurants.GET("/:id", h.RestaurantHandler.GetRestaurant)
			restaurants.POST("", h.RestaurantHandler.CreateRestaurant)
			restaurants.PUT("/:id", h.RestaurantHandler.UpdateRestaurant)
			restaurants.DELETE("/:id", h.RestaurantHandler.DeleteRestaurant)

			// Subscription lifecycle, one record per restaurant
			restaurants.GET("/:id/subscription", h.BillingHandler.GetSubscriptionStatus)
			restaurants.POST("/:id/subscription", h.BillingHandler.Subscribe)
			restaurants.POST("/:id/subscription/cancel", h.BillingHandler.CancelSubscription)
			restaurants.POST("/:id/subscription/reactivate", h.BillingHandler.ReactivateSubscription)
			restaurants.POST("/:id/subscription/renew", h.BillingHandler.RenewSubscription)
		}

		// Profiles
		profiles := console.Group("/profiles")
		{
			profiles.GET("", h.ProfileHandler.ListProfiles)
			profiles.GET("/:id", h.ProfileHandler.GetProfile)
			profiles.POST("", h.ProfileHandler.CreateProfile)
			profiles.PUT("/:id", h.ProfileHandler.UpdateProfile)
			profiles.DELETE("/:id", h.ProfileHandler.DeleteProfile)
		}

		// Plan administration
		adminPlans := console.Group("/admin/plans")
		adminPlans.Use(h.AuthMiddleware.RequireRole("admin"))
		{
			adminPlans.POST("", h.BillingHandler.CreatePlan)
			adminPlans.GET("/:id", h.BillingHandler.GetPlan)
			adminPlans.PUT("/:id", h.BillingHandler.UpdatePlan)
			adminPlans.PUT("/:id/deactivate", h.BillingHandler.DeactivatePlan)
		}
	}
}
