// Package handler maps the HTTP surface onto the service layer: request
// binding, query parsing and the error-taxonomy-to-status translation.
package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"atleti-backend/service"
)

// writeError translates a service error into the HTTP response.
// Internal failures are logged with operation context but never echo
// driver details back to the caller.
func writeError(c *gin.Context, op string, err error) {
	log.Printf("[ERROR] %s: %v", op, err)

	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// limitQuery parses the optional ?limit= parameter; 0 means unspecified
// and lets the service apply its default.
func limitQuery(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		return 0
	}
	return limit
}
