package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"railbook/models"
	"railbook/services"
)

// BookSeat reserves one seat for the authenticated user
func (h *Handlers) BookSeat(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		abortNoIdentity(c)
		return
	}

	var req models.BookSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %v", services.ErrInvalidArgument, err))
		return
	}

	booking, err := h.Bookings.Book(c.Request.Context(), uid, req.TrainID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "booking successful",
		"booking_id":  booking.ID,
		"booking_ref": booking.Ref,
	})
}

// GetBooking returns one of the authenticated user's bookings
func (h *Handlers) GetBooking(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		abortNoIdentity(c)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, fmt.Errorf("%w: invalid booking id", services.ErrInvalidArgument))
		return
	}

	detail, err := h.Bookings.Get(c.Request.Context(), id, uid)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
