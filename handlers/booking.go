package handlers

import (
	"net/http"

	"grandstay/database/repository"

	"github.com/gin-gonic/gin"
)

// BookingRepo is wired in main.
var BookingRepo repository.BookingRepository

// GetBooking returns one booking by id.
func GetBooking(c *gin.Context) {
	id := c.Param("id")

	booking, err := BookingRepo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking"})
		return
	}
	if booking == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ListBookings returns a guest's bookings by email, newest first.
func ListBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	bookings, err := BookingRepo.GetByGuestEmail(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
