package models

import "time"

type MenuItem struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	ProductCode     string       `gorm:"type:varchar(50);unique;not null" json:"product_code"`
	Name            string       `gorm:"type:varchar(255);not null" json:"name"`
	Description     *string      `gorm:"type:text" json:"description,omitempty"`
	CategoryID      uint         `gorm:"not null;index" json:"category_id"`
	Category        MenuCategory `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	SellingPrice    float64      `gorm:"type:decimal(10,2);not null" json:"selling_price"`
	PurchasePrice   *float64     `gorm:"type:decimal(10,2)" json:"purchase_price,omitempty"`
	PurchaseValue   float64      `gorm:"type:decimal(12,2);not null;default:0" json:"purchase_value"`
	QuantityInStock int          `gorm:"not null;default:0" json:"quantity_in_stock"`
	UnitType        string       `gorm:"type:varchar(50);not null;default:'piece'" json:"unit_type"`
	Availability    string       `gorm:"type:varchar(20);not null;default:'available'" json:"availability"`
	ImageURL        *string      `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	IsUnlimited     bool         `gorm:"not null;default:false" json:"is_unlimited"`
	IsPremium       bool         `gorm:"not null;default:false" json:"is_premium"`
	CreatedAt       time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"not null" json:"updated_at"`
}
