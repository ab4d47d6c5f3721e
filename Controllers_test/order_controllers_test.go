package Controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/tehimas/warung-seblak/controllers"
	"github.com/tehimas/warung-seblak/models"
)

func setupOrderRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	orderCtrl := controllers.NewOrderController(db)
	r.GET("/orders", orderCtrl.ListOrders)
	r.GET("/orders/:order_id", orderCtrl.GetOrder)
	r.GET("/orders/:order_id/actions", orderCtrl.Actions)
	r.PATCH("/orders/:order_id/status", orderCtrl.AdvanceStatus)
	return r
}

func seedOrder(t *testing.T, db *gorm.DB, status models.OrderStatus) models.Order {
	order := models.Order{
		CustomerName:  "Rina",
		CustomerPhone: "08123456789",
		Kind:          models.OrderKindSimple,
		TotalPrice:    25000,
		Status:        status,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order
}

// Order berstatus confirmed hanya boleh menawarkan satu aksi: preparing.
func TestActionsForConfirmedOrder(t *testing.T) {
	db := setupTestDB(t)
	r := setupOrderRouter(db)
	order := seedOrder(t, db, models.StatusConfirmed)

	w := performRequest(r, "GET", fmt.Sprintf("/orders/%d/actions", order.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	actions := data["actions"].([]interface{})
	assert.Len(t, actions, 1)
	assert.Equal(t, "preparing", actions[0])
}

func TestActionsForCompletedOrderIsEmpty(t *testing.T) {
	db := setupTestDB(t)
	r := setupOrderRouter(db)
	order := seedOrder(t, db, models.StatusCompleted)

	w := performRequest(r, "GET", fmt.Sprintf("/orders/%d/actions", order.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Empty(t, data["actions"])
}

func TestAdvanceStatusSingleStep(t *testing.T) {
	db := setupTestDB(t)
	r := setupOrderRouter(db)
	order := seedOrder(t, db, models.StatusPending)

	path := fmt.Sprintf("/orders/%d/status", order.ID)

	w := performRequest(r, "PATCH", path, map[string]string{"status": "confirmed"})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Order
	db.First(&updated, order.ID)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
}

func TestAdvanceStatusRejectsSkip(t *testing.T) {
	db := setupTestDB(t)
	r := setupOrderRouter(db)
	order := seedOrder(t, db, models.StatusPending)

	w := performRequest(r, "PATCH", fmt.Sprintf("/orders/%d/status", order.ID),
		map[string]string{"status": "preparing"})
	assert.Equal(t, http.StatusConflict, w.Code)

	var updated models.Order
	db.First(&updated, order.ID)
	assert.Equal(t, models.StatusPending, updated.Status, "status tidak boleh berubah")
}

func TestAdvanceStatusRejectsReverse(t *testing.T) {
	db := setupTestDB(t)
	r := setupOrderRouter(db)
	order := seedOrder(t, db, models.StatusPreparing)

	w := performRequest(r, "PATCH", fmt.Sprintf("/orders/%d/status", order.ID),
		map[string]string{"status": "confirmed"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdvanceStatusRejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	r := setupOrderRouter(db)
	order := seedOrder(t, db, models.StatusPending)

	w := performRequest(r, "PATCH", fmt.Sprintf("/orders/%d/status", order.ID),
		map[string]string{"status": "cancelled"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdvanceStatusCompletedHasNoNext(t *testing.T) {
	db := setupTestDB(t)
	r := setupOrderRouter(db)
	order := seedOrder(t, db, models.StatusCompleted)

	w := performRequest(r, "PATCH", fmt.Sprintf("/orders/%d/status", order.ID),
		map[string]string{"status": "completed"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListOrdersNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	r := setupOrderRouter(db)

	old := models.Order{CustomerName: "Lama", CustomerPhone: "081", Status: models.StatusPending,
		CreatedAt: time.Now().Add(-time.Hour), UpdatedAt: time.Now().Add(-time.Hour)}
	db.Create(&old)
	seedOrder(t, db, models.StatusPending)

	w := performRequest(r, "GET", "/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Order `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, "Rina", resp.Data[0].CustomerName)
}
