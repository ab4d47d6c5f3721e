package models

import "time"

type SeblakVariation struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	BasePrice    float64   `gorm:"type:decimal(10,2);not null" json:"base_price"`
	IsAvailable  bool      `gorm:"not null;default:true" json:"is_available"`
	CurrentStock int       `gorm:"not null;default:0" json:"current_stock"`
	MinimumStock int       `gorm:"not null;default:0" json:"minimum_stock"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// IsLowStock reports whether stock has fallen to or below the restock threshold.
func (v *SeblakVariation) IsLowStock() bool {
	return v.CurrentStock <= v.MinimumStock
}
