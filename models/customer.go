package models

import "time"

type Customer struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CustomerCode string    `gorm:"type:varchar(20);unique;not null" json:"customer_code"`
	FirstName    string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName     string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Email        *string   `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty"`
	Phone        *string   `gorm:"type:varchar(50)" json:"phone,omitempty"`
	DateOfBirth  *string   `gorm:"type:varchar(20)" json:"date_of_birth,omitempty"`
	Address      *string   `gorm:"type:text" json:"address,omitempty"`
	City         *string   `gorm:"type:varchar(100)" json:"city,omitempty"`
	Country      *string   `gorm:"type:varchar(100)" json:"country,omitempty"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}
