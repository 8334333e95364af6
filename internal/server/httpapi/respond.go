package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akarpov87/taskkeep/internal/common"
)

// writeError maps the error taxonomy to transport status codes. Everything
// unexpected becomes a generic 500 and is logged here, not exposed.
func (s *HTTPServer) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
	case errors.Is(err, common.ErrorAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
	case errors.Is(err, common.ErrorUnauthorized):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password"})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found or unauthorized"})
	default:
		s.logger.Error(c.Request.Context(), "unexpected error", "path", c.FullPath(), "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}
