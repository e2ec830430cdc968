package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/uvcaspaces/booking-portal/internal/models"
)

// InquiryStore persists contact-form inquiries and the admin's follow-up
// state.
type InquiryStore struct {
	db *gorm.DB
}

func NewInquiryStore(db *gorm.DB) *InquiryStore {
	return &InquiryStore{db: db}
}

func (s *InquiryStore) Create(ctx context.Context, inquiry *models.ContactInquiry) error {
	return s.db.WithContext(ctx).Create(inquiry).Error
}

// InquiryFilter narrows the admin listing. Zero values mean "no filter";
// EndDate is inclusive of the whole day.
type InquiryFilter struct {
	Status    string
	StartDate time.Time
	EndDate   time.Time
}

func (s *InquiryStore) List(ctx context.Context, f InquiryFilter) ([]models.ContactInquiry, error) {
	q := s.db.WithContext(ctx).Model(&models.ContactInquiry{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if !f.StartDate.IsZero() {
		q = q.Where("created_at >= ?", f.StartDate)
	}
	if !f.EndDate.IsZero() {
		q = q.Where("created_at <= ?", f.EndDate.Add(24*time.Hour))
	}

	var inquiries []models.ContactInquiry
	if err := q.
		Order("created_at DESC").
		Find(&inquiries).Error; err != nil {
		return nil, err
	}
	return inquiries, nil
}

// UpdateStatus sets the follow-up status and, when given, the admin notes.
func (s *InquiryStore) UpdateStatus(ctx context.Context, id uint, status string, adminNotes *string) (*models.ContactInquiry, error) {
	var inquiry models.ContactInquiry
	if err := s.db.WithContext(ctx).First(&inquiry, id).Error; err != nil {
		return nil, translate(err)
	}

	inquiry.Status = status
	if adminNotes != nil {
		inquiry.AdminNotes = *adminNotes
	}

	if err := s.db.WithContext(ctx).Save(&inquiry).Error; err != nil {
		return nil, err
	}
	return &inquiry, nil
}
