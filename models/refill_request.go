package models

import "time"

const (
	RefillPending    = "pending"
	RefillInProgress = "in_progress"
	RefillCompleted  = "completed"
	RefillCancelled  = "cancelled"
)

type RefillRequest struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	TableCode   string           `gorm:"type:varchar(50);not null" json:"table_code"`
	TableID     uint             `gorm:"not null;index" json:"table_id"`
	Table       *RestaurantTable `gorm:"foreignKey:TableID" json:"table,omitempty"`
	CustomerID  *uint            `gorm:"index" json:"customer_id,omitempty"`
	Customer    *Customer        `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	RequestType string           `gorm:"type:varchar(100);not null" json:"request_type"`
	Price       float64          `gorm:"type:decimal(10,2);not null;default:200" json:"price"`
	Status      string           `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	RequestedAt time.Time        `gorm:"not null" json:"requested_at"`
	ProcessedBy *uint            `json:"processed_by,omitempty"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
	CreatedAt   time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"not null" json:"updated_at"`
}

// ValidRefillStatus memeriksa enum status refill.
func ValidRefillStatus(s string) bool {
	switch s {
	case RefillPending, RefillInProgress, RefillCompleted, RefillCancelled:
		return true
	}
	return false
}
