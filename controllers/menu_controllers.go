package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tehimas/warung-seblak/models"
	"github.com/tehimas/warung-seblak/utils"
)

type MenuItemController struct {
	DB *gorm.DB
}

func NewMenuItemController(db *gorm.DB) *MenuItemController {
	return &MenuItemController{DB: db}
}

// ListActive -> daftar menu aktif untuk storefront
func (mc *MenuItemController) ListActive(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.Where("is_active = ?", true).Order("id").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daftar menu", items)
}

// ListAll -> semua menu termasuk yang nonaktif, untuk panel admin
func (mc *MenuItemController) ListAll(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.Order("id").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daftar menu (admin)", items)
}

func (mc *MenuItemController) Create(c *gin.Context) {
	var input struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		Price       float64 `json:"price" binding:"required"`
		SpiceLevel  int     `json:"spice_level"`
		ImageURL    string  `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if input.SpiceLevel < 1 {
		input.SpiceLevel = 1
	}
	if input.SpiceLevel > 5 {
		input.SpiceLevel = 5
	}

	item := models.MenuItem{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		SpiceLevel:  input.SpiceLevel,
		ImageURL:    input.ImageURL,
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Menu dibuat", item)
}

func (mc *MenuItemController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var input struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		SpiceLevel  *int     `json:"spice_level"`
		ImageURL    *string  `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.SpiceLevel != nil && *input.SpiceLevel >= 1 && *input.SpiceLevel <= 5 {
		item.SpiceLevel = *input.SpiceLevel
	}
	if input.ImageURL != nil {
		item.ImageURL = *input.ImageURL
	}
	item.UpdatedAt = time.Now()

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu diperbarui", item)
}

// ToggleActive membalik flag aktif menu.
func (mc *MenuItemController) ToggleActive(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	item.IsActive = !item.IsActive
	item.UpdatedAt = time.Now()
	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Status menu diubah", item)
}
