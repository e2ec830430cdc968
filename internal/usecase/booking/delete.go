package booking

import (
	"context"

	"github.com/uvcaspaces/booking-portal/internal/audit"
	domain "github.com/uvcaspaces/booking-portal/internal/domain/booking"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	bookingID uint,
	userID uint,
	role string,
) error {

	b, err := NewGetBooking(uc.repo).Execute(ctx, bookingID, userID, role)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteBooking(ctx, b); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return nil
}
