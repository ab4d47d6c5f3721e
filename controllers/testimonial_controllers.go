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

type TestimonialController struct {
	DB *gorm.DB
}

func NewTestimonialController(db *gorm.DB) *TestimonialController {
	return &TestimonialController{DB: db}
}

// ListVisible -> testimoni yang ditampilkan di storefront, terbaru dulu
func (tc *TestimonialController) ListVisible(c *gin.Context) {
	var testimonials []models.Testimonial
	if err := tc.DB.Where("is_visible = ?", true).Order("created_at desc").Find(&testimonials).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daftar testimoni", testimonials)
}

func (tc *TestimonialController) ListAll(c *gin.Context) {
	var testimonials []models.Testimonial
	if err := tc.DB.Order("created_at desc").Find(&testimonials).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daftar testimoni (admin)", testimonials)
}

func (tc *TestimonialController) Create(c *gin.Context) {
	var input struct {
		CustomerName string `json:"customer_name" binding:"required"`
		Rating       int    `json:"rating" binding:"required"`
		Comment      string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if input.Rating < 1 {
		input.Rating = 1
	}
	if input.Rating > 5 {
		input.Rating = 5
	}

	testimonial := models.Testimonial{
		CustomerName: input.CustomerName,
		Rating:       input.Rating,
		Comment:      input.Comment,
		IsVisible:    true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := tc.DB.Create(&testimonial).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Testimoni dibuat", testimonial)
}

// ToggleVisibility menyembunyikan/menampilkan testimoni di storefront.
func (tc *TestimonialController) ToggleVisibility(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var testimonial models.Testimonial
	if err := tc.DB.First(&testimonial, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	testimonial.IsVisible = !testimonial.IsVisible
	testimonial.UpdatedAt = time.Now()
	if err := tc.DB.Save(&testimonial).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Visibilitas testimoni diubah", testimonial)
}
