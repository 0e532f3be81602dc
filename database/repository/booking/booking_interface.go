package bookingRepo

import "grandstay/models"

// BookingRepository defines data access for confirmed bookings.
type BookingRepository interface {
	// Create inserts a booking. If a booking already exists for the same
	// provider payment id, the existing booking is returned instead of a
	// duplicate being created.
	Create(booking *models.Booking) (*models.Booking, error)
	GetByID(id string) (*models.Booking, error)
	GetByPaymentID(paymentID string) (*models.Booking, error)
	GetByGuestEmail(email string) ([]models.Booking, error)
}
