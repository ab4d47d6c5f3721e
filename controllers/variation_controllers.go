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

type VariationController struct {
	DB *gorm.DB
}

func NewVariationController(db *gorm.DB) *VariationController {
	return &VariationController{DB: db}
}

// ListAvailable -> variasi yang tersedia, urut dari harga termurah
func (vc *VariationController) ListAvailable(c *gin.Context) {
	var variations []models.SeblakVariation
	if err := vc.DB.Where("is_available = ?", true).Order("base_price").Find(&variations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daftar variasi", variations)
}

func (vc *VariationController) ListAll(c *gin.Context) {
	var variations []models.SeblakVariation
	if err := vc.DB.Order("base_price").Find(&variations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daftar variasi (admin)", variations)
}

func (vc *VariationController) Create(c *gin.Context) {
	var input struct {
		Name         string  `json:"name" binding:"required"`
		Description  string  `json:"description"`
		BasePrice    float64 `json:"base_price" binding:"required"`
		CurrentStock int     `json:"current_stock"`
		MinimumStock int     `json:"minimum_stock"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	variation := models.SeblakVariation{
		Name:         input.Name,
		Description:  input.Description,
		BasePrice:    input.BasePrice,
		IsAvailable:  true,
		CurrentStock: input.CurrentStock,
		MinimumStock: input.MinimumStock,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := vc.DB.Create(&variation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Variasi dibuat", variation)
}

// UpdateStock mengganti stok saat ini dan menyiarkan peringatan bila
// menyentuh batas minimum.
func (vc *VariationController) UpdateStock(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var variation models.SeblakVariation
	if err := vc.DB.First(&variation, id).Error; err != nil {
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

	variation.CurrentStock = *input.CurrentStock
	if input.MinimumStock != nil {
		variation.MinimumStock = *input.MinimumStock
	}
	variation.UpdatedAt = time.Now()

	if err := vc.DB.Save(&variation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if variation.IsLowStock() {
		events.BroadcastStockLow(variation.Name, variation.CurrentStock, variation.MinimumStock)
	}

	utils.RespondJSON(c, http.StatusOK, "Stok variasi diperbarui", variation)
}

func (vc *VariationController) ToggleAvailability(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var variation models.SeblakVariation
	if err := vc.DB.First(&variation, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	variation.IsAvailable = !variation.IsAvailable
	variation.UpdatedAt = time.Now()
	if err := vc.DB.Save(&variation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Ketersediaan variasi diubah", variation)
}
