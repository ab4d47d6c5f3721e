package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tehimas/warung-seblak/events"
	"github.com/tehimas/warung-seblak/models"
	"github.com/tehimas/warung-seblak/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// ListOrders -> semua order untuk panel admin, terbaru dulu
func (oc *OrderController) ListOrders(c *gin.Context) {
	var orders []models.Order
	err := oc.DB.
		Preload("Items.MenuItem").
		Preload("Toppings.Topping").
		Preload("Variation").
		Preload("Customization").
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daftar pesanan", orders)
}

// GetOrder -> detail satu order
func (oc *OrderController) GetOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	var order models.Order
	err := oc.DB.
		Preload("Items.MenuItem").
		Preload("Toppings.Topping").
		Preload("Variation").
		Preload("Customization").
		First(&order, id).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Detail pesanan", order)
}

// Actions mengembalikan aksi status yang tersedia untuk order ini.
// Selalu nol atau satu aksi: hanya status berikutnya pada urutan.
func (oc *OrderController) Actions(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	actions := []models.OrderStatus{}
	if next, ok := order.Status.Next(); ok {
		actions = append(actions, next)
	}
	utils.RespondJSON(c, http.StatusOK, "Aksi status", gin.H{
		"status":  order.Status,
		"actions": actions,
	})
}

// AdvanceStatus memajukan status order satu langkah. Lompat atau mundur
// ditolak; target harus persis status berikutnya.
func (oc *OrderController) AdvanceStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var input struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !input.Status.Valid() {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("status tidak dikenal: %s", input.Status))
		return
	}

	next, ok := order.Status.Next()
	if !ok || input.Status != next {
		utils.RespondError(c, http.StatusConflict, ErrInvalidTransition)
		return
	}

	order.Status = next
	order.UpdatedAt = time.Now()
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order #%d -> %s", order.ID, order.Status)
	events.BroadcastOrderStatus(order)

	utils.RespondJSON(c, http.StatusOK, "Status pesanan diperbarui", order)
}
