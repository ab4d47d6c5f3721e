package Controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/tehimas/warung-seblak/controllers"
	"github.com/tehimas/warung-seblak/models"
)

func setupMenuRouter(db *gorm.DB) *gin.Engine {
	ctrl := controllers.NewMenuItemController(db)
	r := gin.New()
	r.GET("/menu-items", ctrl.ListActive)
	r.GET("/admin/menu-items", ctrl.ListAll)
	r.POST("/admin/menu-items", ctrl.Create)
	r.PATCH("/admin/menu-items/:id", ctrl.Update)
	r.PATCH("/admin/menu-items/:id/toggle", ctrl.ToggleActive)
	return r
}

func decodeMenuItems(t *testing.T, body []byte) []models.MenuItem {
	var resp struct {
		Data []models.MenuItem `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	return resp.Data
}

func TestListActiveHidesInactiveItems(t *testing.T) {
	db := setupTestDB(t)
	r := setupMenuRouter(db)

	db.Create(&models.MenuItem{Name: "Es Teh Manis", Price: 5000, IsActive: true})
	db.Create(&models.MenuItem{Name: "Kopi Tubruk", Price: 4000, IsActive: false})

	w := performRequest(r, "GET", "/menu-items", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	items := decodeMenuItems(t, w.Body.Bytes())
	assert.Len(t, items, 1)
	assert.Equal(t, "Es Teh Manis", items[0].Name)
}

func TestListAllIncludesInactiveItems(t *testing.T) {
	db := setupTestDB(t)
	r := setupMenuRouter(db)

	db.Create(&models.MenuItem{Name: "Es Teh Manis", Price: 5000, IsActive: true})
	db.Create(&models.MenuItem{Name: "Kopi Tubruk", Price: 4000, IsActive: false})

	w := performRequest(r, "GET", "/admin/menu-items", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeMenuItems(t, w.Body.Bytes()), 2)
}

func TestCreateMenuItemClampsSpiceLevel(t *testing.T) {
	db := setupTestDB(t)
	r := setupMenuRouter(db)

	w := performRequest(r, "POST", "/admin/menu-items", map[string]interface{}{
		"name":        "Mie Pedas",
		"price":       12000,
		"spice_level": 9,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var item models.MenuItem
	db.Where("name = ?", "Mie Pedas").First(&item)
	assert.Equal(t, 5, item.SpiceLevel)
	assert.True(t, item.IsActive, "menu baru langsung aktif")
}

func TestUpdateMenuItemPartial(t *testing.T) {
	db := setupTestDB(t)
	r := setupMenuRouter(db)

	item := models.MenuItem{Name: "Es Teh Manis", Price: 5000, IsActive: true}
	db.Create(&item)

	w := performRequest(r, "PATCH", fmt.Sprintf("/admin/menu-items/%d", item.ID),
		map[string]interface{}{"price": 6000})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.MenuItem
	db.First(&updated, item.ID)
	assert.Equal(t, float64(6000), updated.Price)
	assert.Equal(t, "Es Teh Manis", updated.Name, "field lain tidak ikut berubah")
}

func TestToggleMenuItem(t *testing.T) {
	db := setupTestDB(t)
	r := setupMenuRouter(db)

	item := models.MenuItem{Name: "Es Teh Manis", Price: 5000, IsActive: true}
	db.Create(&item)

	path := fmt.Sprintf("/admin/menu-items/%d/toggle", item.ID)

	w := performRequest(r, "PATCH", path, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.MenuItem
	db.First(&updated, item.ID)
	assert.False(t, updated.IsActive)

	performRequest(r, "PATCH", path, nil)
	db.First(&updated, item.ID)
	assert.True(t, updated.IsActive)
}

func TestToggleMissingMenuItem(t *testing.T) {
	db := setupTestDB(t)
	r := setupMenuRouter(db)

	w := performRequest(r, "PATCH", "/admin/menu-items/999/toggle", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
