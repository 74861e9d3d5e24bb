package models

import "time"

// RawItem adalah stok bahan mentah (Chicken/Pork/Beef) yang dibeli per kilogram.
type RawItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);unique;not null" json:"name"`
	BuyingPrice float64   `gorm:"type:decimal(10,2);not null" json:"buying_price"`
	QuantityKg  float64   `gorm:"type:decimal(10,2);not null" json:"quantity_kg"`
	Notes       *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (RawItem) TableName() string {
	return "raw_meat_inventory"
}
