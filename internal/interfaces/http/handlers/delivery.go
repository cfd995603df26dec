// internal/interfaces/http/handlers/delivery.go
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/your-org/shopping-assistant/internal/domain/catalog"
	"github.com/your-org/shopping-assistant/internal/domain/delivery"
)

// DeliveryHandler handles delivery optimization endpoints
type DeliveryHandler struct {
	service *delivery.Service
	log     *logrus.Logger
}

// NewDeliveryHandler creates a new delivery handler
func NewDeliveryHandler(service *delivery.Service, log *logrus.Logger) *DeliveryHandler {
	return &DeliveryHandler{
		service: service,
		log:     log,
	}
}

// OptimizeRequest represents the delivery optimization request body
type OptimizeRequest struct {
	SelectedProducts []catalog.Product `json:"selectedProducts"`
	DeliveryAddress  delivery.Address  `json:"deliveryAddress"`
	UserPreferences  preferenceBag     `json:"userPreferences"`
}

// Optimize handles POST /delivery/optimize
func (h *DeliveryHandler) Optimize(c *gin.Context) {
	var req OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "Invalid request data", err.Error())
		return
	}

	var prefs *delivery.Preferences
	if maxWait := req.UserPreferences.intValue("maxWaitMinutes"); maxWait > 0 {
		prefs = &delivery.Preferences{MaxWaitMinutes: maxWait}
	}

	result, err := h.service.ProcessDeliveryFlow(c.Request.Context(), req.SelectedProducts, req.DeliveryAddress, prefs)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respondOK(c, gin.H{
		"warehousesConsidered": result.WarehousesConsidered,
		"deliveryOptions":      result.DeliveryOptions,
		"recommendedDelivery":  result.RecommendedDelivery,
		"timestamp":            time.Now().UTC(),
	})
}

// Options handles GET /delivery/options
func (h *DeliveryHandler) Options(c *gin.Context) {
	zipCode := c.Query("zipCode")
	city := c.Query("city")
	state := c.Query("state")

	info, err := h.service.ServiceArea(c.Request.Context(), zipCode, city, state)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respondOK(c, info)
}
