package models

import "time"

// WarungSetting menyimpan konfigurasi warung sebagai pasangan key/value
// (nama warung, nomor WhatsApp, alamat, jam buka, status buka).
type WarungSetting struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SettingKey   string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"setting_key"`
	SettingValue string    `gorm:"type:text" json:"setting_value"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}
