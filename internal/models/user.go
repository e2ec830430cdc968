package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	FirstName string `gorm:"size:50;not null" json:"first_name"`
	LastName  string `gorm:"size:50;not null" json:"last_name"`
	Company   string `gorm:"size:100" json:"company,omitempty"`

	Role string `gorm:"size:20;default:'user'" json:"role"`

	ProfileImage string `gorm:"size:255" json:"profile_image,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
