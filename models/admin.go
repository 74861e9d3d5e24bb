package models

import "time"

// Admin adalah akun staff back-office (role: admin / manager / cashier).
type Admin struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"type:varchar(100);unique;not null" json:"username"`
	Email        string     `gorm:"type:varchar(255);unique;not null" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	FirstName    string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName     string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Phone        *string    `gorm:"type:varchar(50)" json:"phone,omitempty"`
	DateOfBirth  *string    `gorm:"type:varchar(20)" json:"date_of_birth,omitempty"`
	City         *string    `gorm:"type:varchar(100)" json:"city,omitempty"`
	Country      *string    `gorm:"type:varchar(100)" json:"country,omitempty"`
	AvatarURL    *string    `gorm:"type:varchar(255)" json:"avatar_url,omitempty"`
	Role         string     `gorm:"type:varchar(20);not null;default:'admin'" json:"role"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updated_at"`
}
