package models

import "time"

const (
	ReservationPending    = "pending"
	ReservationConfirmed  = "confirmed"
	ReservationInProgress = "in_progress"
	ReservationCompleted  = "completed"
	ReservationCancelled  = "cancelled"
)

type Reservation struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	ReservationCode string           `gorm:"type:varchar(50);unique;not null" json:"reservation_code"`
	CustomerName    string           `gorm:"type:varchar(200);not null" json:"customer_name"`
	Phone           string           `gorm:"type:varchar(50);not null" json:"phone"`
	Email           *string          `gorm:"type:varchar(255)" json:"email,omitempty"`
	TableID         uint             `gorm:"not null;index" json:"table_id"`
	Table           *RestaurantTable `gorm:"foreignKey:TableID" json:"table,omitempty"`
	Occasion        *string          `gorm:"type:varchar(100)" json:"occasion,omitempty"`
	NumberOfGuests  int              `gorm:"not null" json:"number_of_guests"`
	ReservationDate string           `gorm:"type:varchar(10);not null" json:"reservation_date"` // YYYY-MM-DD
	ReservationTime string           `gorm:"type:varchar(5);not null" json:"reservation_time"`  // HH:MM
	DurationHours   int              `gorm:"not null;default:2" json:"duration_hours"`
	PaymentAmount   float64          `gorm:"type:decimal(12,2);not null;default:0" json:"payment_amount"`
	PaymentStatus   string           `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	Status          string           `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Notes           *string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"not null" json:"updated_at"`
}

// ValidReservationStatus memeriksa enum status reservasi.
func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationInProgress,
		ReservationCompleted, ReservationCancelled:
		return true
	}
	return false
}
