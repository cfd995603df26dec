// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/your-org/shopping-assistant/internal/domain/optimizer"
)

// CartHandler handles cart optimization endpoints
type CartHandler struct {
	service *optimizer.Service
	log     *logrus.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(service *optimizer.Service, log *logrus.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log,
	}
}

// OptimizeCartRequest represents the cart optimization request body
type OptimizeCartRequest struct {
	CartItems       []optimizer.CartItem `json:"cartItems"`
	UserPreferences preferenceBag        `json:"userPreferences"`
}

// Optimize handles POST /cart/optimize
func (h *CartHandler) Optimize(c *gin.Context) {
	var req OptimizeCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "Invalid request data", err.Error())
		return
	}

	var prefs *optimizer.Preferences
	excluded := req.UserPreferences.stringSlice("excludedCategories")
	brandTier := req.UserPreferences.stringValue("brandTier")
	if len(excluded) > 0 || brandTier != "" {
		prefs = &optimizer.Preferences{
			ExcludedCategories: excluded,
			BrandTier:          brandTier,
		}
	}

	result, err := h.service.OptimizeCart(c.Request.Context(), req.CartItems, prefs)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respondOK(c, gin.H{
		"rollbacks":      result.Rollbacks,
		"substitutions":  result.Substitutions,
		"bundles":        result.Bundles,
		"totalSavings":   result.TotalSavings,
		"timestamp":      time.Now().UTC(),
		"optimizationId": uuid.New().String(),
	})
}
