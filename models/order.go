package models

import "time"

const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

type Order struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	OrderCode      string           `gorm:"type:varchar(50);unique;not null" json:"order_code"`
	CustomerID     *uint            `gorm:"index" json:"customer_id,omitempty"`
	Customer       *Customer        `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	CustomerName   string           `gorm:"type:varchar(200);not null" json:"customer_name"`
	TableID        *uint            `gorm:"index" json:"table_id,omitempty"`
	Table          *RestaurantTable `gorm:"foreignKey:TableID" json:"table,omitempty"`
	OrderType      string           `gorm:"type:varchar(20);not null;default:'dine_in'" json:"order_type"`
	Subtotal       float64          `gorm:"type:decimal(12,2);not null;default:0" json:"subtotal"`
	DiscountAmount float64          `gorm:"type:decimal(12,2);not null;default:0" json:"discount_amount"`
	TaxAmount      float64          `gorm:"type:decimal(12,2);not null;default:0" json:"tax_amount"`
	TotalAmount    float64          `gorm:"type:decimal(12,2);not null;default:0" json:"total_amount"`
	Status         string           `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PaymentStatus  string           `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	CompletedAt    *time.Time       `json:"completed_at,omitempty"`
	Notes          *string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy      uint             `gorm:"not null;default:1" json:"created_by"`
	OrderItems     []OrderItem      `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`
	CreatedAt      time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"not null" json:"updated_at"`
}
