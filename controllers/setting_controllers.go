package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tehimas/warung-seblak/models"
	"github.com/tehimas/warung-seblak/utils"
)

type SettingController struct {
	DB *gorm.DB
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{DB: db}
}

// GetSettings mengembalikan seluruh pengaturan sebagai map key -> value.
func (sc *SettingController) GetSettings(c *gin.Context) {
	var settings []models.WarungSetting
	if err := sc.DB.Find(&settings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	settingsMap := make(map[string]string, len(settings))
	for _, s := range settings {
		settingsMap[s.SettingKey] = s.SettingValue
	}
	utils.RespondJSON(c, http.StatusOK, "Pengaturan warung", settingsMap)
}

// UpsertSetting menyimpan satu pasangan key/value (insert atau update).
func (sc *SettingController) UpsertSetting(c *gin.Context) {
	var input struct {
		Key   string `json:"key" binding:"required"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	setting := models.WarungSetting{
		SettingKey:   input.Key,
		SettingValue: input.Value,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	err := sc.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Pengaturan disimpan", gin.H{
		"key":   input.Key,
		"value": input.Value,
	})
}
