package models

import (
	"fmt"
	"time"
)

// OrderStatus berjalan maju satu langkah pada urutan tetap:
// pending -> confirmed -> preparing -> ready -> completed.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
)

// StatusSequence adalah urutan status yang valid, dari awal sampai akhir.
var StatusSequence = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusCompleted,
}

// Next mengembalikan satu-satunya status lanjutan yang diizinkan,
// atau false jika order sudah berada di status terakhir.
func (s OrderStatus) Next() (OrderStatus, bool) {
	for i, st := range StatusSequence {
		if st == s && i+1 < len(StatusSequence) {
			return StatusSequence[i+1], true
		}
	}
	return "", false
}

func (s OrderStatus) Valid() bool {
	for _, st := range StatusSequence {
		if st == s {
			return true
		}
	}
	return false
}

// OrderKind membedakan order biasa (dari daftar menu) dengan order
// parasmanan yang membawa kustomisasi lengkap.
type OrderKind string

const (
	OrderKindSimple     OrderKind = "simple"
	OrderKindCustomized OrderKind = "customized"
)

type Order struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	CustomerName  string           `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerPhone string           `gorm:"type:varchar(50);not null" json:"customer_phone"`
	Kind          OrderKind        `gorm:"type:varchar(20);not null;default:'simple'" json:"kind"`
	VariationID   *uint            `gorm:"index" json:"variation_id,omitempty"`
	Variation     *SeblakVariation `gorm:"foreignKey:VariationID" json:"variation,omitempty"`
	TotalPrice    float64          `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_price"`
	Status        OrderStatus      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt     time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"not null" json:"updated_at"`

	Items         []OrderItem         `gorm:"foreignKey:OrderID" json:"items"`
	Toppings      []OrderTopping      `gorm:"foreignKey:OrderID" json:"toppings"`
	Customization *OrderCustomization `gorm:"foreignKey:OrderID" json:"customization,omitempty"`
}

// OrderCustomization hanya ada untuk order parasmanan (Kind = customized).
type OrderCustomization struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	OrderID      uint     `gorm:"not null;uniqueIndex" json:"order_id"`
	SpiceLevel   string   `gorm:"type:varchar(20)" json:"spice_level"` // "Level 1".."Level 5"
	ServingStyle string   `gorm:"type:varchar(20)" json:"serving_style"`
	EatingStyle  string   `gorm:"type:varchar(20)" json:"eating_style"`
	Vegetables   []string `gorm:"serializer:json;type:text" json:"vegetables"`
	Flavors      []string `gorm:"serializer:json;type:text" json:"flavors"`
	Notes        string   `gorm:"type:text" json:"notes"`
}

// ReferenceCode menghasilkan kode order untuk ditampilkan ke pelanggan.
func (o *Order) ReferenceCode() string {
	return fmt.Sprintf("WS-%d", o.ID)
}
