// File: database/repository/booking/bookingMongoCrud.go
package bookingRepo

import (
	"fmt"
	"time"

	"grandstay/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new booking document. A duplicate-key error on payment_id
// resolves to the already-stored booking, so a retried materialization never
// yields two bookings for one payment.
func (r *MongoBookingRepo) Create(booking *models.Booking) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			existing, lookupErr := r.GetByPaymentID(booking.PaymentID)
			if lookupErr != nil {
				return nil, fmt.Errorf("booking for payment %s exists but could not be fetched: %w", booking.PaymentID, lookupErr)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return booking, nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// GetByPaymentID retrieves the booking keyed by a provider payment id.
func (r *MongoBookingRepo) GetByPaymentID(paymentID string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"payment_id": paymentID}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking for payment %s: %w", paymentID, err)
	}
	return &booking, nil
}

// GetByGuestEmail retrieves all bookings made under a guest email.
func (r *MongoBookingRepo) GetByGuestEmail(email string) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"guest.email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings for %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
