package booking

import (
	"context"
	"time"

	"github.com/uvcaspaces/booking-portal/internal/audit"
	domain "github.com/uvcaspaces/booking-portal/internal/domain/booking"
	"github.com/uvcaspaces/booking-portal/internal/httperr"
	"github.com/uvcaspaces/booking-portal/internal/models"
)

type CreateBookingInput struct {
	UserID uint

	ServiceID uint
	Date      string
	SlotStart string
	SlotEnd   string
	Notes     string
}

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	start, errStart := time.Parse("15:04", in.SlotStart)
	end, errEnd := time.Parse("15:04", in.SlotEnd)
	if errStart != nil || errEnd != nil || !start.Before(end) {
		return nil, httperr.ErrBusiness("invalid_time_slot")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !svc.Active {
		return nil, httperr.ErrBusiness("service_inactive")
	}

	b := &models.Booking{
		UserID:    in.UserID,
		ServiceID: svc.ID,
		Date:      date,
		SlotStart: in.SlotStart,
		SlotEnd:   in.SlotEnd,
		Notes:     in.Notes,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	// Denormalize the service into the response.
	if err := uc.repo.PopulateService(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
