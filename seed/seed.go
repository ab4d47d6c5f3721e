// Package seed mengisi data contoh saat tabel masih kosong, supaya
// storefront dan panel admin langsung bisa dipakai untuk demo.
package seed

import (
	"time"

	"gorm.io/gorm"

	"github.com/tehimas/warung-seblak/models"
	"github.com/tehimas/warung-seblak/utils"
)

func Run(db *gorm.DB) {
	seedVariations(db)
	seedToppings(db)
	seedMenuItems(db)
	seedSettings(db)
	seedTestimonials(db)
}

func seedVariations(db *gorm.DB) {
	var count int64
	db.Model(&models.SeblakVariation{}).Count(&count)
	if count > 0 {
		return
	}

	variations := []models.SeblakVariation{
		{Name: "Seblak Original", Description: "Kerupuk, bakso, sayuran segar", BasePrice: 10000, IsAvailable: true, CurrentStock: 50, MinimumStock: 10},
		{Name: "Seblak Ceker", Description: "Dengan ceker ayam empuk", BasePrice: 13000, IsAvailable: true, CurrentStock: 40, MinimumStock: 10},
		{Name: "Seblak Seafood", Description: "Cumi, udang, dan bakso ikan", BasePrice: 17000, IsAvailable: true, CurrentStock: 30, MinimumStock: 5},
		{Name: "Seblak Komplit", Description: "Semua topping jadi satu", BasePrice: 20000, IsAvailable: true, CurrentStock: 25, MinimumStock: 5},
	}
	for i := range variations {
		variations[i].CreatedAt = time.Now()
		variations[i].UpdatedAt = time.Now()
	}
	if err := db.Create(&variations).Error; err != nil {
		utils.ErrorLogger.Printf("Seed variasi gagal: %v", err)
		return
	}
	utils.InfoLogger.Printf("Seed: %d variasi", len(variations))
}

func seedToppings(db *gorm.DB) {
	var count int64
	db.Model(&models.Topping{}).Count(&count)
	if count > 0 {
		return
	}

	toppings := []models.Topping{
		{Name: "Bakso", Price: 3000, IsAvailable: true, CurrentStock: 100, MinimumStock: 20},
		{Name: "Ceker", Price: 4000, IsAvailable: true, CurrentStock: 60, MinimumStock: 15},
		{Name: "Sosis", Price: 3000, IsAvailable: true, CurrentStock: 80, MinimumStock: 20},
		{Name: "Telur", Price: 3000, IsAvailable: true, CurrentStock: 90, MinimumStock: 20},
		{Name: "Mie", Price: 2000, IsAvailable: true, CurrentStock: 100, MinimumStock: 25},
		{Name: "Makaroni", Price: 2000, IsAvailable: true, CurrentStock: 100, MinimumStock: 25},
		{Name: "Cumi", Price: 5000, IsAvailable: true, CurrentStock: 40, MinimumStock: 10},
		{Name: "Udang", Price: 5000, IsAvailable: true, CurrentStock: 40, MinimumStock: 10},
	}
	for i := range toppings {
		toppings[i].CreatedAt = time.Now()
		toppings[i].UpdatedAt = time.Now()
	}
	if err := db.Create(&toppings).Error; err != nil {
		utils.ErrorLogger.Printf("Seed topping gagal: %v", err)
		return
	}
	utils.InfoLogger.Printf("Seed: %d topping", len(toppings))
}

func seedMenuItems(db *gorm.DB) {
	var count int64
	db.Model(&models.MenuItem{}).Count(&count)
	if count > 0 {
		return
	}

	items := []models.MenuItem{
		{Name: "Seblak Kerupuk", Description: "Seblak klasik kerupuk pedas", Price: 10000, SpiceLevel: 3, IsActive: true},
		{Name: "Seblak Ceker Pedas", Description: "Ceker ayam bumbu kencur", Price: 15000, SpiceLevel: 4, IsActive: true},
		{Name: "Seblak Tulang", Description: "Tulang ayam gurih pedas", Price: 13000, SpiceLevel: 3, IsActive: true},
		{Name: "Es Teh Manis", Description: "Teh manis dingin", Price: 5000, SpiceLevel: 1, IsActive: true},
	}
	for i := range items {
		items[i].CreatedAt = time.Now()
		items[i].UpdatedAt = time.Now()
	}
	if err := db.Create(&items).Error; err != nil {
		utils.ErrorLogger.Printf("Seed menu gagal: %v", err)
		return
	}
	utils.InfoLogger.Printf("Seed: %d menu", len(items))
}

func seedSettings(db *gorm.DB) {
	var count int64
	db.Model(&models.WarungSetting{}).Count(&count)
	if count > 0 {
		return
	}

	settings := []models.WarungSetting{
		{SettingKey: "warung_name", SettingValue: "Warung Seblak Teh Imas"},
		{SettingKey: "whatsapp_number", SettingValue: "6281234567890"},
		{SettingKey: "address", SettingValue: "Jl. Raya Parasmanan No. 1"},
		{SettingKey: "open_hours", SettingValue: "10.00 - 21.00"},
		{SettingKey: "is_open", SettingValue: "true"},
	}
	for i := range settings {
		settings[i].CreatedAt = time.Now()
		settings[i].UpdatedAt = time.Now()
	}
	if err := db.Create(&settings).Error; err != nil {
		utils.ErrorLogger.Printf("Seed pengaturan gagal: %v", err)
	}
}

func seedTestimonials(db *gorm.DB) {
	var count int64
	db.Model(&models.Testimonial{}).Count(&count)
	if count > 0 {
		return
	}

	testimonials := []models.Testimonial{
		{CustomerName: "Rina", Rating: 5, Comment: "Seblaknya mantap, level pedasnya pas!", IsVisible: true},
		{CustomerName: "Budi", Rating: 4, Comment: "Ceker empuk, porsi banyak.", IsVisible: true},
		{CustomerName: "Sari", Rating: 5, Comment: "Langganan tiap minggu, ga pernah kecewa.", IsVisible: true},
	}
	for i := range testimonials {
		testimonials[i].CreatedAt = time.Now()
		testimonials[i].UpdatedAt = time.Now()
	}
	if err := db.Create(&testimonials).Error; err != nil {
		utils.ErrorLogger.Printf("Seed testimoni gagal: %v", err)
	}
}
