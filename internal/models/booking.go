package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Date time.Time `json:"date"`

	// Requested slot, "15:04" wall-clock strings as submitted by the client.
	SlotStart string `gorm:"size:5" json:"slot_start"`
	SlotEnd   string `gorm:"size:5" json:"slot_end"`

	Notes  string `gorm:"size:255" json:"notes"`
	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
