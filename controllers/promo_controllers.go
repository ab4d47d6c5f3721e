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

type PromoController struct {
	DB *gorm.DB
}

func NewPromoController(db *gorm.DB) *PromoController {
	return &PromoController{DB: db}
}

// ListActive -> promo aktif untuk storefront, terbaru di atas
func (pc *PromoController) ListActive(c *gin.Context) {
	var promos []models.Promo
	if err := pc.DB.Where("is_active = ?", true).Order("start_date desc").Find(&promos).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daftar promo", promos)
}

func (pc *PromoController) ListAll(c *gin.Context) {
	var promos []models.Promo
	if err := pc.DB.Order("start_date desc").Find(&promos).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daftar promo (admin)", promos)
}

func (pc *PromoController) Create(c *gin.Context) {
	var input struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		StartDate   string `json:"start_date" binding:"required"` // YYYY-MM-DD
		EndDate     string `json:"end_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	startDate, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	endDate, err := time.Parse("2006-01-02", input.EndDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	promo := models.Promo{
		Title:       input.Title,
		Description: input.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := pc.DB.Create(&promo).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Promo dibuat", promo)
}

func (pc *PromoController) ToggleActive(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var promo models.Promo
	if err := pc.DB.First(&promo, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	promo.IsActive = !promo.IsActive
	promo.UpdatedAt = time.Now()
	if err := pc.DB.Save(&promo).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Status promo diubah", promo)
}
