package booking

import (
	"context"

	domain "github.com/uvcaspaces/booking-portal/internal/domain/booking"
	"github.com/uvcaspaces/booking-portal/internal/httperr"
	"github.com/uvcaspaces/booking-portal/internal/models"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

// Execute fetches one booking. Non-admin callers only see their own; a
// booking owned by someone else reads as not found.
func (uc *GetBooking) Execute(
	ctx context.Context,
	bookingID uint,
	userID uint,
	role string,
) (*models.Booking, error) {

	b, err := uc.fetch(ctx, bookingID, userID, role)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	return b, nil
}

func (uc *GetBooking) fetch(
	ctx context.Context,
	bookingID uint,
	userID uint,
	role string,
) (*models.Booking, error) {

	if role == models.RoleAdmin {
		return uc.repo.GetBooking(ctx, bookingID)
	}
	return uc.repo.GetBookingForUser(ctx, bookingID, userID)
}
