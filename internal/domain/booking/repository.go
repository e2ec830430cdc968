package booking

import (
	"context"
	"time"

	"github.com/uvcaspaces/booking-portal/internal/models"
)

// ListFilter narrows the admin listing. Zero values mean "no filter".
type ListFilter struct {
	Status    Status
	StartDate time.Time
	EndDate   time.Time
}

type Repository interface {
	// -------- Service --------
	GetService(ctx context.Context, id uint) (*models.Service, error)

	// -------- Booking (create) --------
	CreateBooking(ctx context.Context, b *models.Booking) error

	// -------- Booking (read) --------
	// GetBookingForUser scopes the lookup to the owner; a booking owned
	// by someone else is indistinguishable from a missing one.
	GetBookingForUser(ctx context.Context, bookingID, userID uint) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID uint) (*models.Booking, error)
	ListBookingsForUser(ctx context.Context, userID uint) ([]models.Booking, error)
	ListBookings(ctx context.Context, filter ListFilter) ([]models.Booking, error)

	// -------- Booking (write) --------
	UpdateBooking(ctx context.Context, b *models.Booking) error
	DeleteBooking(ctx context.Context, b *models.Booking) error

	// -------- Populate --------
	PopulateService(ctx context.Context, b *models.Booking) error
}
