package booking

import (
	"context"
	"time"

	"github.com/uvcaspaces/booking-portal/internal/audit"
	domain "github.com/uvcaspaces/booking-portal/internal/domain/booking"
	"github.com/uvcaspaces/booking-portal/internal/httperr"
	"github.com/uvcaspaces/booking-portal/internal/models"
)

type UpdateBookingInput struct {
	Date      *string
	SlotStart *string
	SlotEnd   *string
	Notes     *string
	Status    *string
}

type UpdateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBooking {
	return &UpdateBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	bookingID uint,
	userID uint,
	role string,
	in UpdateBookingInput,
) (*models.Booking, error) {

	b, err := NewGetBooking(uc.repo).Execute(ctx, bookingID, userID, role)
	if err != nil {
		return nil, err
	}

	if in.Date != nil {
		date, err := time.Parse("2006-01-02", *in.Date)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		b.Date = date
	}
	if in.SlotStart != nil {
		b.SlotStart = *in.SlotStart
	}
	if in.SlotEnd != nil {
		b.SlotEnd = *in.SlotEnd
	}
	// Re-check the whole slot after the merge: changing one edge alone
	// can invert it.
	if in.SlotStart != nil || in.SlotEnd != nil {
		start, errStart := time.Parse("15:04", b.SlotStart)
		end, errEnd := time.Parse("15:04", b.SlotEnd)
		if errStart != nil || errEnd != nil || !start.Before(end) {
			return nil, httperr.ErrBusiness("invalid_time_slot")
		}
	}
	if in.Notes != nil {
		b.Notes = *in.Notes
	}
	if in.Status != nil {
		if err := domain.CanTransition(domain.Status(b.Status), domain.Status(*in.Status)); err != nil {
			return nil, err
		}
		b.Status = *in.Status
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	if err := uc.repo.PopulateService(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: in,
	})

	return b, nil
}
