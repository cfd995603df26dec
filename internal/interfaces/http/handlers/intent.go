// internal/interfaces/http/handlers/intent.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/your-org/shopping-assistant/internal/domain/intent"
)

// IntentHandler handles intent classification endpoints
type IntentHandler struct {
	service *intent.Service
	log     *logrus.Logger
}

// NewIntentHandler creates a new intent handler
func NewIntentHandler(service *intent.Service, log *logrus.Logger) *IntentHandler {
	return &IntentHandler{
		service: service,
		log:     log,
	}
}

// ClassifyRequest represents the classify request body
type ClassifyRequest struct {
	Utterance string `json:"utterance"`
}

// Classify handles POST /intent
func (h *IntentHandler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "Invalid request data", err.Error())
		return
	}

	result, err := h.service.Classify(req.Utterance)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respondOK(c, gin.H{
		"intent": result,
	})
}
