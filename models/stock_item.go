package models

import "time"

// StockItem adalah bahan baku mentah (bukan menu yang dijual langsung).
type StockItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	CurrentStock int       `gorm:"not null;default:0" json:"current_stock"`
	MinimumStock int       `gorm:"not null;default:0" json:"minimum_stock"`
	Unit         string    `gorm:"type:varchar(50);not null" json:"unit"` // kg, pcs, liter, ...
	PricePerUnit float64   `gorm:"type:decimal(10,2);not null" json:"price_per_unit"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

func (s *StockItem) IsLowStock() bool {
	return s.CurrentStock <= s.MinimumStock
}
