package models

import "time"

type ContactInquiry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;not null" json:"email"`
	Phone string `gorm:"size:20" json:"phone,omitempty"`

	// Name of the service the visitor asked about, free text from the form.
	Service       *string    `gorm:"size:100" json:"service"`
	PreferredDate *time.Time `json:"preferred_date"`

	Message   string `gorm:"size:2000;not null" json:"message"`
	Subscribe bool   `gorm:"default:false" json:"subscribe"`

	Status     string `gorm:"size:20;default:'new'" json:"status"`
	AdminNotes string `gorm:"size:1000" json:"admin_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	InquiryStatusNew        = "new"
	InquiryStatusInProgress = "in_progress"
	InquiryStatusResolved   = "resolved"
	InquiryStatusSpam       = "spam"
)

func IsValidInquiryStatus(s string) bool {
	switch s {
	case InquiryStatusNew, InquiryStatusInProgress, InquiryStatusResolved, InquiryStatusSpam:
		return true
	}
	return false
}
