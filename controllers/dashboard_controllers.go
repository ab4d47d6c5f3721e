package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tehimas/warung-seblak/models"
	"github.com/tehimas/warung-seblak/utils"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type orderDistribution struct {
	Kuah          int `json:"kuah"`
	Kering        int `json:"kering"`
	Bungkus       int `json:"bungkus"`
	MakanDitempat int `json:"makan_ditempat"`
}

// Stats menghitung ringkasan dashboard dari data order mentah. Tidak ada
// cache: setiap request menghitung ulang.
func (dc *DashboardController) Stats(c *gin.Context) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// Order hari ini (untuk jumlah, omzet, dan distribusi)
	var todayOrders []models.Order
	if err := dc.DB.Preload("Customization").
		Where("created_at >= ?", midnight).
		Find(&todayOrders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var todayRevenue float64
	var distribution orderDistribution
	for _, order := range todayOrders {
		todayRevenue += order.TotalPrice
		if order.Customization == nil {
			continue
		}
		switch order.Customization.ServingStyle {
		case "kuah":
			distribution.Kuah++
		case "kering":
			distribution.Kering++
		}
		switch order.Customization.EatingStyle {
		case "dibungkus":
			distribution.Bungkus++
		case "di-tempat":
			distribution.MakanDitempat++
		}
	}

	// Omzet 7 hari terakhir, satu slot per hari, hari ini di posisi akhir
	weeklyRevenue := make([]float64, 7)
	weekStart := midnight.AddDate(0, 0, -6)

	var weekOrders []models.Order
	if err := dc.DB.Where("created_at >= ?", weekStart).Find(&weekOrders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	for _, order := range weekOrders {
		day := int(order.CreatedAt.Sub(weekStart).Hours() / 24)
		if day >= 0 && day < 7 {
			weeklyRevenue[day] += order.TotalPrice
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Statistik dashboard", gin.H{
		"today_orders":       len(todayOrders),
		"today_revenue":      todayRevenue,
		"weekly_revenue":     weeklyRevenue,
		"order_distribution": distribution,
		"popular_variation":  dc.popularVariation(),
		"popular_topping":    dc.popularTopping(),
	})
}

// popularVariation dihitung dari order tersimpan, bukan nilai statis.
func (dc *DashboardController) popularVariation() string {
	var result struct {
		Name  string
		Total int64
	}
	err := dc.DB.Model(&models.Order{}).
		Select("seblak_variations.name as name, COUNT(orders.id) as total").
		Joins("JOIN seblak_variations ON seblak_variations.id = orders.variation_id").
		Where("orders.variation_id IS NOT NULL").
		Group("seblak_variations.name").
		Order("total desc").
		Limit(1).
		Scan(&result).Error
	if err != nil || result.Name == "" {
		return "-"
	}
	return result.Name
}

func (dc *DashboardController) popularTopping() string {
	var result struct {
		Name  string
		Total int64
	}
	err := dc.DB.Model(&models.OrderTopping{}).
		Select("toppings.name as name, SUM(order_toppings.quantity) as total").
		Joins("JOIN toppings ON toppings.id = order_toppings.topping_id").
		Group("toppings.name").
		Order("total desc").
		Limit(1).
		Scan(&result).Error
	if err != nil || result.Name == "" {
		return "-"
	}
	return result.Name
}
