// internal/interfaces/http/handlers/response.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/your-org/shopping-assistant/internal/pkg/errs"
)

// respondOK writes the uniform success envelope
func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondValidation writes a 400 for malformed or missing input
func respondValidation(c *gin.Context, message, details string) {
	body := gin.H{
		"success": false,
		"error":   message,
	}
	if details != "" {
		body["details"] = details
	}
	c.JSON(http.StatusBadRequest, body)
}

// respondError maps a service error onto the envelope: validation failures
// are 400, service-area misses are 422, everything else becomes a generic
// 500 with full detail kept in server logs only.
func respondError(c *gin.Context, log *logrus.Logger, err error) {
	if errs.IsValidation(err) {
		respondValidation(c, err.Error(), "")
		return
	}

	if errs.IsServiceArea(err) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"error":   "Delivery is not available for this address",
			"details": err.Error(),
		})
		return
	}

	log.WithError(err).WithField("path", c.FullPath()).Error("Request failed")
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   "Internal server error",
	})
}

// preferenceBag tolerantly extracts recognized keys from an open preference
// object; unknown keys are ignored, never rejected.
type preferenceBag map[string]interface{}

func (p preferenceBag) intValue(key string) int {
	switch v := p[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func (p preferenceBag) stringValue(key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

func (p preferenceBag) stringSlice(key string) []string {
	raw, ok := p[key].([]interface{})
	if !ok {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			values = append(values, s)
		}
	}
	return values
}
