package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"railbook/services"
)

// writeError maps service errors to HTTP responses. Unclassified
// errors are logged and returned as an opaque internal error.
func writeError(c *gin.Context, err error) {
	var status int
	var code string

	switch {
	case errors.Is(err, services.ErrInvalidArgument):
		status, code = http.StatusBadRequest, "invalid_argument"
	case errors.Is(err, services.ErrUnauthorized):
		status, code = http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, services.ErrForbidden):
		status, code = http.StatusForbidden, "forbidden"
	case errors.Is(err, services.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, services.ErrConflict):
		status, code = http.StatusConflict, "conflict"
	case errors.Is(err, services.ErrNoSeatsAvailable):
		status, code = http.StatusConflict, "no_seats_available"
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "internal",
			"message": "internal error",
		})
		return
	}

	c.AbortWithStatusJSON(status, gin.H{
		"error":   code,
		"message": err.Error(),
	})
}
