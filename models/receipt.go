package models

import "time"

type Receipt struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	ReceiptNumber  string       `gorm:"type:varchar(50);unique;not null" json:"receipt_number"`
	OrderID        uint         `gorm:"not null;index" json:"order_id"`
	Order          *Order       `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	TransactionID  uint         `gorm:"not null;index" json:"transaction_id"`
	Transaction    *Transaction `gorm:"foreignKey:TransactionID" json:"transaction,omitempty"`
	CustomerName   string       `gorm:"type:varchar(200);not null" json:"customer_name"`
	Subtotal       float64      `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	DiscountAmount float64      `gorm:"type:decimal(12,2);not null;default:0" json:"discount_amount"`
	TaxAmount      float64      `gorm:"type:decimal(12,2);not null;default:0" json:"tax_amount"`
	TotalAmount    float64      `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	CreatedAt      time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"not null" json:"updated_at"`
}
