package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/uvcaspaces/booking-portal/internal/domain/booking"
	"github.com/uvcaspaces/booking-portal/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBookingForUser(
	ctx context.Context,
	bookingID uint,
	userID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("id = ? AND user_id = ?", bookingID, userID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		First(&b, bookingID).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookingsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("user_id = ?", userID).
		Order("date DESC, slot_start DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service")

	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if !filter.StartDate.IsZero() {
		q = q.Where("date >= ?", filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		q = q.Where("date <= ?", filter.EndDate)
	}

	var bookings []models.Booking
	if err := q.
		Order("date ASC, slot_start ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Delete(b).Error
}

func (r *BookingGormRepository) PopulateService(
	ctx context.Context,
	b *models.Booking,
) error {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, b.ServiceID).Error; err != nil {
		return err
	}
	b.Service = svc
	return nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
