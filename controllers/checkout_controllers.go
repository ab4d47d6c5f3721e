package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tehimas/warung-seblak/composer"
	"github.com/tehimas/warung-seblak/events"
	"github.com/tehimas/warung-seblak/models"
	"github.com/tehimas/warung-seblak/services/whatsapp"
	"github.com/tehimas/warung-seblak/utils"
)

// CheckoutController memegang sesi composer pelanggan dan menjalankan
// alur checkout: simpan best-effort, lalu hand-off ke WhatsApp.
type CheckoutController struct {
	DB       *gorm.DB
	Registry *composer.Registry
	WA       *whatsapp.Service
}

func NewCheckoutController(db *gorm.DB, registry *composer.Registry, wa *whatsapp.Service) *CheckoutController {
	return &CheckoutController{DB: db, Registry: registry, WA: wa}
}

// CreateSession membuat sesi composer baru untuk satu tab pelanggan.
func (cc *CheckoutController) CreateSession(c *gin.Context) {
	id, _ := cc.Registry.Create()
	utils.RespondJSON(c, http.StatusCreated, "Sesi dibuat", gin.H{
		"session_id": id,
	})
}

func (cc *CheckoutController) session(c *gin.Context) (*composer.Composer, bool) {
	cmp, err := cc.Registry.Get(c.Param("session_id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return nil, false
	}
	return cmp, true
}

// GetState mengembalikan isi composer apa adanya; total dihitung ulang
// setiap kali, tidak pernah disimpan.
func (cc *CheckoutController) GetState(c *gin.Context) {
	cmp, ok := cc.session(c)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "State pesanan", composerState(cmp))
}

func composerState(cmp *composer.Composer) gin.H {
	return gin.H{
		"step":          cmp.Step(),
		"lines":         cmp.Lines(),
		"variation":     cmp.Variation(),
		"toppings":      cmp.ToppingLines(),
		"spice_level":   cmp.SpiceLevel(),
		"serving_style": cmp.ServingStyle(),
		"eating_style":  cmp.EatingStyle(),
		"vegetables":    cmp.Vegetables(),
		"flavors":       cmp.Flavors(),
		"notes":         cmp.Notes(),
		"total":         cmp.Total(),
	}
}

// AddItem menambahkan satu menu ke keranjang (atau menambah kuantitas).
func (cc *CheckoutController) AddItem(c *gin.Context) {
	cmp, ok := cc.session(c)
	if !ok {
		return
	}

	var input struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.MenuItem
	if err := cc.DB.Where("is_active = ?", true).First(&item, input.MenuItemID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	cmp.AddItem(composer.ItemSnapshot{ID: item.ID, Name: item.Name, Price: item.Price})
	utils.RespondJSON(c, http.StatusOK, "Item ditambahkan", composerState(cmp))
}

// ChangeQuantity menambah/mengurangi kuantitas baris keranjang.
func (cc *CheckoutController) ChangeQuantity(c *gin.Context) {
	cmp, ok := cc.session(c)
	if !ok {
		return
	}

	// Delta pointer supaya 0 tetap lolos binding; 0 adalah no-op di composer.
	var input struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Delta      *int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cmp.ChangeQuantity(input.MenuItemID, *input.Delta)
	utils.RespondJSON(c, http.StatusOK, "Kuantitas diubah", composerState(cmp))
}

// SelectVariation memilih satu variasi seblak; null membatalkan pilihan.
func (cc *CheckoutController) SelectVariation(c *gin.Context) {
	cmp, ok := cc.session(c)
	if !ok {
		return
	}

	var input struct {
		VariationID *uint `json:"variation_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if input.VariationID == nil {
		cmp.SelectVariation(nil)
		utils.RespondJSON(c, http.StatusOK, "Variasi dibatalkan", composerState(cmp))
		return
	}

	var variation models.SeblakVariation
	if err := cc.DB.Where("is_available = ?", true).First(&variation, *input.VariationID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	cmp.SelectVariation(&composer.ItemSnapshot{
		ID:    variation.ID,
		Name:  variation.Name,
		Price: variation.BasePrice,
	})
	utils.RespondJSON(c, http.StatusOK, "Variasi dipilih", composerState(cmp))
}

// ChangeTopping menambah/mengurangi kuantitas topping.
func (cc *CheckoutController) ChangeTopping(c *gin.Context) {
	cmp, ok := cc.session(c)
	if !ok {
		return
	}

	var input struct {
		ToppingID uint `json:"topping_id" binding:"required"`
		Delta     *int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var topping models.Topping
	if err := cc.DB.Where("is_available = ?", true).First(&topping, input.ToppingID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	cmp.SetToppingQuantity(composer.ItemSnapshot{
		ID:    topping.ID,
		Name:  topping.Name,
		Price: topping.Price,
	}, *input.Delta)
	utils.RespondJSON(c, http.StatusOK, "Topping diubah", composerState(cmp))
}

// SetAttribute mengubah satu field kustomisasi. Untuk vegetable/flavor
// nilainya di-toggle: kirim dua kali = kembali seperti semula.
func (cc *CheckoutController) SetAttribute(c *gin.Context) {
	cmp, ok := cc.session(c)
	if !ok {
		return
	}

	var input struct {
		Attribute string `json:"attribute" binding:"required"`
		Value     string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	switch input.Attribute {
	case "spice_level":
		level, err := strconv.Atoi(input.Value)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("level pedas harus angka: %q", input.Value))
			return
		}
		cmp.SetSpiceLevel(level)
	case "serving_style":
		cmp.SetServingStyle(input.Value)
	case "eating_style":
		cmp.SetEatingStyle(input.Value)
	case "vegetable":
		cmp.ToggleVegetable(input.Value)
	case "flavor":
		cmp.ToggleFlavor(input.Value)
	case "notes":
		cmp.SetNotes(input.Value)
	default:
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("atribut tidak dikenal: %q", input.Attribute))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Atribut diubah", composerState(cmp))
}

// BeginCheckout pindah ke pengisian data pelanggan.
func (cc *CheckoutController) BeginCheckout(c *gin.Context) {
	cmp, ok := cc.session(c)
	if !ok {
		return
	}

	if err := cmp.BeginCheckout(); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Silakan isi data pemesan", composerState(cmp))
}

// CancelCheckout kembali ke tahap menyusun tanpa membuang keranjang.
func (cc *CheckoutController) CancelCheckout(c *gin.Context) {
	cmp, ok := cc.session(c)
	if !ok {
		return
	}
	cmp.CancelCheckout()
	utils.RespondJSON(c, http.StatusOK, "Checkout dibatalkan", composerState(cmp))
}

// Submit menutup pesanan: validasi data pemesan, simpan best-effort,
// lalu selalu kembalikan link WhatsApp. Gagal simpan tidak menggagalkan
// hand-off; pesanan tetap sampai ke warung lewat pesan.
func (cc *CheckoutController) Submit(c *gin.Context) {
	cmp, ok := cc.session(c)
	if !ok {
		return
	}

	var input struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sub, err := cmp.Submit(input.Name, input.Phone)
	if err != nil {
		if errors.Is(err, composer.ErrWrongStep) {
			utils.RespondError(c, http.StatusConflict, err)
		} else {
			utils.RespondError(c, http.StatusUnprocessableEntity, err)
		}
		return
	}

	message := whatsapp.FormatSubmission(sub)
	link := cc.WA.DeepLink(message)

	order, persistErr := cc.persistSubmission(sub)
	if persistErr != nil {
		utils.ErrorLogger.Printf("Gagal menyimpan order, lanjut ke WhatsApp: %v", persistErr)
	}

	if err := cc.WA.Push(message); err != nil {
		utils.ErrorLogger.Printf("Relay WhatsApp gagal: %v", err)
	}

	// Composer selalu di-reset setelah satu kali checkout, berhasil
	// simpan ataupun tidak.
	cmp.Complete(persistErr)

	resp := gin.H{
		"whatsapp_url": link,
	}
	if order != nil {
		resp["order_id"] = order.ID
		resp["reference"] = order.ReferenceCode()
	}
	if persistErr != nil {
		resp["persist_error"] = persistErr.Error()
	}
	utils.RespondJSON(c, http.StatusOK, "Pesanan dikirim", resp)
}

// persistSubmission menyimpan header order lalu baris-barisnya. Tidak
// ada transaksi yang merentang header dan baris: header tersimpan tanpa
// baris adalah kondisi yang ditoleransi (dicatat, tidak di-retry).
func (cc *CheckoutController) persistSubmission(sub *composer.Submission) (*models.Order, error) {
	order := models.Order{
		CustomerName:  sub.CustomerName,
		CustomerPhone: sub.CustomerPhone,
		Kind:          models.OrderKindSimple,
		TotalPrice:    sub.Total,
		Status:        models.StatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if sub.Customized() {
		order.Kind = models.OrderKindCustomized
	}
	if sub.Variation != nil {
		id := sub.Variation.ID
		order.VariationID = &id
	}

	if err := cc.DB.Create(&order).Error; err != nil {
		return nil, err
	}

	for _, line := range sub.Lines {
		item := models.OrderItem{
			OrderID:    order.ID,
			MenuItemID: line.Item.ID,
			Quantity:   line.Quantity,
			Price:      line.Item.Price,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
		if err := cc.DB.Create(&item).Error; err != nil {
			utils.ErrorLogger.Printf("Gagal menyimpan item order #%d: %v", order.ID, err)
		}
	}

	for _, t := range sub.Toppings {
		topping := models.OrderTopping{
			OrderID:   order.ID,
			ToppingID: t.Topping.ID,
			Quantity:  t.Quantity,
			Price:     t.Topping.Price,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := cc.DB.Create(&topping).Error; err != nil {
			utils.ErrorLogger.Printf("Gagal menyimpan topping order #%d: %v", order.ID, err)
		}
	}

	if sub.Customized() {
		customization := models.OrderCustomization{
			OrderID:      order.ID,
			SpiceLevel:   fmt.Sprintf("Level %d", sub.SpiceLevel),
			ServingStyle: sub.ServingStyle,
			EatingStyle:  sub.EatingStyle,
			Vegetables:   sub.Vegetables,
			Flavors:      sub.Flavors,
			Notes:        sub.Notes,
		}
		if err := cc.DB.Create(&customization).Error; err != nil {
			utils.ErrorLogger.Printf("Gagal menyimpan kustomisasi order #%d: %v", order.ID, err)
		}
	}

	events.BroadcastOrderCreated(order)
	return &order, nil
}
