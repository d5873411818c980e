package handlers

import (
	"net/http"

	apperrors "postl-admin-backend/internal/errors"
	"postl-admin-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// respondError writes the error taxonomy as HTTP. Backend failures keep the
// backend's own message in details so the operator sees it verbatim.
func respondError(c *gin.Context, err error, failure string) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsConfirmationRequired(err):
		c.JSON(http.StatusPreconditionRequired, gin.H{"error": err.Error(), "details": "repeat the request with confirm=true"})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error(failure)
		c.JSON(http.StatusInternalServerError, gin.H{"error": failure, "details": err.Error()})
	}
}
