package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"railbook/models"
	"railbook/services"
)

// AddTrain registers a new train (operator key required)
func (h *Handlers) AddTrain(c *gin.Context) {
	var req models.AddTrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %v", services.ErrInvalidArgument, err))
		return
	}

	id, err := h.Trains.Add(c.Request.Context(), req.Name, req.Source, req.Destination, req.TotalSeats)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "train added successfully",
		"train_id": id,
	})
}

// ListAvailability returns trains on the requested route
func (h *Handlers) ListAvailability(c *gin.Context) {
	source := c.Query("source")
	destination := c.Query("destination")
	if source == "" || destination == "" {
		writeError(c, fmt.Errorf("%w: source and destination are required", services.ErrInvalidArgument))
		return
	}

	trains, err := h.Trains.ListAvailability(c.Request.Context(), source, destination)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, trains)
}
