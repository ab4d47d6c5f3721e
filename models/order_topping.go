package models

import "time"

type OrderTopping struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"not null" json:"order_id"`
	Order     Order   `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ToppingID uint    `gorm:"not null" json:"topping_id"`
	Topping   Topping `gorm:"foreignKey:ToppingID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"topping"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	// Price adalah harga satuan topping saat order dibuat.
	Price     float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
