package models

import "time"

type Topping struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Price        float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	IsAvailable  bool      `gorm:"not null;default:true" json:"is_available"`
	CurrentStock int       `gorm:"not null;default:0" json:"current_stock"`
	MinimumStock int       `gorm:"not null;default:0" json:"minimum_stock"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

func (t *Topping) IsLowStock() bool {
	return t.CurrentStock <= t.MinimumStock
}
