package booking

import (
	"context"

	domain "github.com/uvcaspaces/booking-portal/internal/domain/booking"
	"github.com/uvcaspaces/booking-portal/internal/models"
)

type ListMyBookings struct {
	repo domain.Repository
}

func NewListMyBookings(repo domain.Repository) *ListMyBookings {
	return &ListMyBookings{repo: repo}
}

func (uc *ListMyBookings) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {
	return uc.repo.ListBookingsForUser(ctx, userID)
}

type ListAllBookings struct {
	repo domain.Repository
}

func NewListAllBookings(repo domain.Repository) *ListAllBookings {
	return &ListAllBookings{repo: repo}
}

func (uc *ListAllBookings) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Booking, error) {
	return uc.repo.ListBookings(ctx, filter)
}
