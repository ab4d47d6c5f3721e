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

type ToppingController struct {
	DB *gorm.DB
}

func NewToppingController(db *gorm.DB) *ToppingController {
	return &ToppingController{DB: db}
}

// ListAvailable -> topping yang tersedia, urut nama
func (tc *ToppingController) ListAvailable(c *gin.Context) {
	var toppings []models.Topping
	if err := tc.DB.Where("is_available = ?", true).Order("name").Find(&toppings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daftar topping", toppings)
}

func (tc *ToppingController) ListAll(c *gin.Context) {
	var toppings []models.Topping
	if err := tc.DB.Order("name").Find(&toppings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daftar topping (admin)", toppings)
}

func (tc *ToppingController) Create(c *gin.Context) {
	var input struct {
		Name         string  `json:"name" binding:"required"`
		Price        float64 `json:"price" binding:"required"`
		CurrentStock int     `json:"current_stock"`
		MinimumStock int     `json:"minimum_stock"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	topping := models.Topping{
		Name:         input.Name,
		Price:        input.Price,
		IsAvailable:  true,
		CurrentStock: input.CurrentStock,
		MinimumStock: input.MinimumStock,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := tc.DB.Create(&topping).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Topping dibuat", topping)
}

func (tc *ToppingController) UpdateStock(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var topping models.Topping
	if err := tc.DB.First(&topping, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var input struct {
		CurrentStock *int `json:"current_stock" binding:"required"`
		MinimumStock *int `json:"minimum_stock"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	topping.CurrentStock = *input.CurrentStock
	if input.MinimumStock != nil {
		topping.MinimumStock = *input.MinimumStock
	}
	topping.UpdatedAt = time.Now()

	if err := tc.DB.Save(&topping).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if topping.IsLowStock() {
		events.BroadcastStockLow(topping.Name, topping.CurrentStock, topping.MinimumStock)
	}

	utils.RespondJSON(c, http.StatusOK, "Stok topping diperbarui", topping)
}

func (tc *ToppingController) ToggleAvailability(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var topping models.Topping
	if err := tc.DB.First(&topping, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	topping.IsAvailable = !topping.IsAvailable
	topping.UpdatedAt = time.Now()
	if err := tc.DB.Save(&topping).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Ketersediaan topping diubah", topping)
}
