package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"railbook/services"
)

const claimsKey = "authClaims"

// RequestTimeout bounds every request's context so a stalled store
// call fails the request instead of hanging it.
func RequestTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireUser gates user-scoped routes on a valid bearer token.
// A missing token is 403, an invalid or expired one is 401.
func (h *Handlers) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			writeError(c, fmt.Errorf("%w: no token provided", services.ErrForbidden))
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		claims, err := h.Auth.ParseToken(token)
		if err != nil {
			writeError(c, err)
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAdminKey gates operator routes on the X-API-Key header.
func (h *Handlers) RequireAdminKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.Auth.CheckAdminKey(c.GetHeader("X-API-Key")); err != nil {
			writeError(c, err)
			return
		}
		c.Next()
	}
}

// userID returns the authenticated user's id from the request context.
func userID(c *gin.Context) (int, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return 0, false
	}
	claims, ok := v.(*services.Claims)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}

// abortNoIdentity is the fallback when a gated handler runs without
// claims in context; it indicates a route wired without RequireUser.
func abortNoIdentity(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error":   "internal",
		"message": "internal error",
	})
}
