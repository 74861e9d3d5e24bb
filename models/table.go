package models

import "time"

// Status meja mengikuti siklus dine-in turnover.
const (
	TableAvailable   = "available"
	TableOccupied    = "occupied"
	TableReserved    = "reserved"
	TableMaintenance = "maintenance"
)

type RestaurantTable struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TableNumber string    `gorm:"type:varchar(50);not null" json:"table_number"`
	TableCode   string    `gorm:"type:varchar(50);unique;not null" json:"table_code"`
	Capacity    int       `gorm:"not null;default:4" json:"capacity"`
	Status      string    `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	Location    *string   `gorm:"type:varchar(100)" json:"location,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (RestaurantTable) TableName() string {
	return "restaurant_tables"
}

// ValidTableStatus memeriksa apakah status termasuk enum yang dikenal.
func ValidTableStatus(s string) bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved, TableMaintenance:
		return true
	}
	return false
}
