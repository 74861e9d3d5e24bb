package models

import "time"

// Metode pembayaran yang diterima kasir.
const (
	PaymentCash  = "cash"
	PaymentGcash = "gcash"
	PaymentCard  = "card"
)

type Transaction struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	TransactionCode string    `gorm:"type:varchar(50);unique;not null" json:"transaction_code"`
	OrderID         uint      `gorm:"not null;index" json:"order_id"`
	Order           *Order    `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	CustomerID      *uint     `gorm:"index" json:"customer_id,omitempty"`
	Customer        *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	PaymentMethod   string    `gorm:"type:varchar(20);not null" json:"payment_method"`
	Amount          float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	Status          string    `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	ReferenceNumber string    `gorm:"type:varchar(100)" json:"reference_number"`
	PaymentDate     string    `gorm:"type:varchar(10);not null" json:"payment_date"` // YYYY-MM-DD
	PaymentTime     string    `gorm:"type:varchar(8);not null" json:"payment_time"`  // HH:MM:SS
	ProcessedBy     uint      `gorm:"not null;default:1" json:"processed_by"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}
