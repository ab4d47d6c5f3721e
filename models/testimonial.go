package models

import "time"

type Testimonial struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CustomerName string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	Rating       int       `gorm:"not null" json:"rating"` // 1..5
	Comment      string    `gorm:"type:text" json:"comment"`
	IsVisible    bool      `gorm:"not null;default:true" json:"is_visible"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}
