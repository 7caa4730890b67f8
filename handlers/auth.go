package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"railbook/models"
	"railbook/services"
)

// Register creates a new user account
func (h *Handlers) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %v", services.ErrInvalidArgument, err))
		return
	}

	id, err := h.Auth.Register(c.Request.Context(), req.Username, req.Password, req.IsAdmin)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user registered successfully",
		"user_id": id,
	})
}

// Login verifies credentials and returns a bearer token
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %v", services.ErrInvalidArgument, err))
		return
	}

	token, err := h.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
