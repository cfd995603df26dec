// internal/interfaces/http/handlers/search.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/your-org/shopping-assistant/internal/domain/intent"
	"github.com/your-org/shopping-assistant/internal/domain/search"
)

// SearchHandler handles product search endpoints
type SearchHandler struct {
	service *search.Service
	log     *logrus.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(service *search.Service, log *logrus.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		log:     log,
	}
}

// SearchRequest represents the search request body
type SearchRequest struct {
	Intent *intent.Intent `json:"intent"`
}

// Search handles POST /search
func (h *SearchHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "Invalid request data", err.Error())
		return
	}
	if req.Intent == nil {
		respondValidation(c, "intent is required", "")
		return
	}

	result, err := h.service.ProcessProductFlow(c.Request.Context(), req.Intent)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	data := gin.H{
		"results": gin.H{
			"products":   result.Products,
			"searchTime": result.SearchTimeMillis(),
		},
	}
	if result.Degraded {
		data["degraded"] = true
	}

	respondOK(c, data)
}
