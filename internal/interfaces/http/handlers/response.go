// internal/interfaces/http/handlers/response.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
)

// respondError maps domain errors onto HTTP statuses. Anything not
// carrying a known kind is a 500 with a generic message so internal
// details never leak to clients.
func respondError(c *gin.Context, err error) {
	var notFound *apperrors.ErrNotFound
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": notFound.Error(),
		})
		return
	}

	var validation *apperrors.ErrValidation
	if errors.As(err, &validation) {
		resp := gin.H{"error": validation.Message}
		if len(validation.Fields) > 0 {
			resp["fields"] = validation.Fields
		}
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	var conflict *apperrors.ErrConflict
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, gin.H{
			"error": conflict.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
