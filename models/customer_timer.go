package models

import "time"

// Status turunan timer; tidak pernah disimpan di database.
const (
	TimerActive    = "active"
	TimerWarning   = "warning"
	TimerExpired   = "expired"
	TimerCompleted = "completed"
)

// CustomerTimer mencatat berapa lama satu customer menempati satu meja.
// Invariant: maksimal satu timer aktif per meja; EndTime terisi jika dan
// hanya jika IsActive = false.
type CustomerTimer struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	CustomerName   string           `gorm:"type:varchar(200);not null" json:"customer_name"`
	TableID        uint             `gorm:"not null;index" json:"table_id"`
	Table          *RestaurantTable `gorm:"foreignKey:TableID" json:"table,omitempty"`
	OrderID        *uint            `gorm:"index" json:"order_id,omitempty"`
	Order          *Order           `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	StartTime      time.Time        `gorm:"not null;index" json:"start_time"`
	EndTime        *time.Time       `json:"end_time,omitempty"`
	ElapsedSeconds int64            `gorm:"not null;default:0" json:"elapsed_seconds"`
	IsActive       bool             `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt      time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"not null" json:"updated_at"`
}
