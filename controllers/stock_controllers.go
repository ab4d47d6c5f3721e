package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tehimas/warung-seblak/events"
	"github.com/tehimas/warung-seblak/models"
	"github.com/tehimas/warung-seblak/utils"
)

type StockController struct {
	DB *gorm.DB
}

func NewStockController(db *gorm.DB) *StockController {
	return &StockController{DB: db}
}

// List -> bahan baku aktif, urut nama
func (sc *StockController) List(c *gin.Context) {
	var items []models.StockItem
	if err := sc.DB.Where("is_active = ?", true).Order("name").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daftar bahan baku", items)
}

func (sc *StockController) Create(c *gin.Context) {
	var input struct {
		Name         string  `json:"name" binding:"required"`
		CurrentStock int     `json:"current_stock"`
		MinimumStock int     `json:"minimum_stock"`
		Unit         string  `json:"unit" binding:"required"`
		PricePerUnit float64 `json:"price_per_unit"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.StockItem{
		Name:         input.Name,
		CurrentStock: input.CurrentStock,
		MinimumStock: input.MinimumStock,
		Unit:         input.Unit,
		PricePerUnit: input.PricePerUnit,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := sc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Bahan baku ditambahkan", item)
}

// UpdateStock mengganti jumlah stok bahan baku.
func (sc *StockController) UpdateStock(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var item models.StockItem
	if err := sc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var input struct {
		CurrentStock *int `json:"current_stock" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item.CurrentStock = *input.CurrentStock
	item.UpdatedAt = time.Now()

	if err := sc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if item.IsLowStock() {
		events.BroadcastStockLow(item.Name, item.CurrentStock, item.MinimumStock)
	}

	utils.RespondJSON(c, http.StatusOK, "Stok diperbarui", item)
}
