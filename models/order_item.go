package models

import "time"

type OrderItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderID    uint      `gorm:"not null;index" json:"order_id"`
	MenuItemID uint      `gorm:"not null;index" json:"menu_item_id"`
	MenuItem   MenuItem  `gorm:"foreignKey:MenuItemID" json:"menu_item,omitempty"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	UnitPrice  float64   `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	TotalPrice float64   `gorm:"type:decimal(12,2);not null" json:"total_price"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
