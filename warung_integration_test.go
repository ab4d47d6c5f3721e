package main

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tehimas/warung-seblak/auth"
	"github.com/tehimas/warung-seblak/composer"
	"github.com/tehimas/warung-seblak/middlewares"
	"github.com/tehimas/warung-seblak/models"
	"github.com/tehimas/warung-seblak/router"
	"github.com/tehimas/warung-seblak/services/whatsapp"
	"github.com/tehimas/warung-seblak/utils"
)

// TestEndToEndIntegration menguji flow utama:
// 0. Seed katalog + admin, lalu login -> token
// 1. Pelanggan menyusun pesanan di composer
// 2. Checkout + submit => link WhatsApp + order tersimpan (pending)
// 3. Admin melihat order baru di daftar
// 4. Admin memajukan status sampai completed, satu langkah tiap kali
// 5. Dashboard mencatat omzet hari ini
func TestEndToEndIntegration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	db := setupIntegrationDB(t)

	verifier, err := auth.NewStaticVerifier("tehimas", "tehimas123", "Teh Imas")
	if err != nil {
		t.Fatalf("verifier: %v", err)
	}
	store := auth.NewMemorySessionStore()
	wa := whatsapp.NewService("6281234567890", nil)
	registry := composer.NewRegistry()

	r := router.SetupRouter(db, registry, wa, verifier, store,
		middlewares.NewRateLimiter(1000, 60))

	token := loginTest(t, r)
	orderID := composeAndSubmitTest(t, r)
	checkAdminSeesOrderTest(t, r, token, orderID)
	advanceOrderTest(t, r, token, orderID)
	checkDashboardTest(t, r, token)
}

// setupIntegrationDB -> migrasi model di SQLite in-memory + seed katalog
func setupIntegrationDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.MenuItem{},
		&models.SeblakVariation{},
		&models.Topping{},
		&models.StockItem{},
		&models.Promo{},
		&models.Testimonial{},
		&models.WarungSetting{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderTopping{},
		&models.OrderCustomization{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	db.Create(&models.MenuItem{Name: "Es Teh Manis", Price: 5000, IsActive: true})
	db.Create(&models.SeblakVariation{Name: "Seblak Original", BasePrice: 10000, IsAvailable: true, CurrentStock: 20, MinimumStock: 5})
	db.Create(&models.Topping{Name: "Ceker", Price: 3000, IsAvailable: true})

	return db
}

func postJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginTest(t *testing.T, r *gin.Engine) string {
	w := postJSON(r, http.MethodPost, "/auth/login", "",
		map[string]string{"username": "tehimas", "password": "tehimas123"})

	log.Printf("Login response: Code=%d, Body=%s", w.Code, w.Body.String())
	if w.Code != http.StatusOK {
		t.Fatalf("loginTest fail: code=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Status bool `json:"status"`
		Data   struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Status || resp.Data.Token == "" {
		t.Fatalf("loginTest: token empty, body=%s", w.Body.String())
	}
	return resp.Data.Token
}

// composeAndSubmitTest -> sesi composer, isi keranjang, submit => pending
func composeAndSubmitTest(t *testing.T, r *gin.Engine) uint {
	w := postJSON(r, http.MethodPost, "/composer", "", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create session: code=%d, body=%s", w.Code, w.Body.String())
	}
	var sessResp struct {
		Data struct {
			SessionID string `json:"session_id"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &sessResp)
	sid := sessResp.Data.SessionID
	if sid == "" {
		t.Fatal("composeAndSubmitTest: session_id kosong")
	}
	base := "/composer/" + sid

	steps := []struct {
		method string
		path   string
		body   map[string]interface{}
	}{
		{http.MethodPost, base + "/items", map[string]interface{}{"menu_item_id": 1}},
		{http.MethodPut, base + "/variation", map[string]interface{}{"variation_id": 1}},
		{http.MethodPatch, base + "/toppings", map[string]interface{}{"topping_id": 1, "delta": 2}},
		{http.MethodPut, base + "/attributes", map[string]interface{}{"attribute": "spice_level", "value": "4"}},
		{http.MethodPut, base + "/attributes", map[string]interface{}{"attribute": "serving_style", "value": "kering"}},
		{http.MethodPost, base + "/checkout", nil},
	}
	for _, s := range steps {
		w := postJSON(r, s.method, s.path, "", s.body)
		if w.Code != http.StatusOK {
			t.Fatalf("%s %s: code=%d, body=%s", s.method, s.path, w.Code, w.Body.String())
		}
	}

	w = postJSON(r, http.MethodPost, base+"/submit", "",
		map[string]string{"name": "Budi", "phone": "08123456789"})
	if w.Code != http.StatusOK {
		t.Fatalf("submit: code=%d, body=%s", w.Code, w.Body.String())
	}

	var subResp struct {
		Data struct {
			WhatsappURL  string `json:"whatsapp_url"`
			OrderID      uint   `json:"order_id"`
			PersistError string `json:"persist_error"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &subResp)
	if !strings.HasPrefix(subResp.Data.WhatsappURL, "https://wa.me/6281234567890?text=") {
		t.Fatalf("submit: link WhatsApp salah: %s", subResp.Data.WhatsappURL)
	}
	if subResp.Data.PersistError != "" {
		t.Fatalf("submit: persist_error: %s", subResp.Data.PersistError)
	}
	if subResp.Data.OrderID == 0 {
		t.Fatal("submit: order_id kosong")
	}
	return subResp.Data.OrderID
}

func checkAdminSeesOrderTest(t *testing.T, r *gin.Engine, token string, orderID uint) {
	w := postJSON(r, http.MethodGet, "/admin/orders/"+strconv.Itoa(int(orderID)), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get order: code=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Status     string  `json:"status"`
			Kind       string  `json:"kind"`
			TotalPrice float64 `json:"total_price"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.Status != "pending" {
		t.Fatalf("order baru harus pending, dapat %s", resp.Data.Status)
	}
	if resp.Data.Kind != "customized" {
		t.Fatalf("order dengan variasi harus customized, dapat %s", resp.Data.Kind)
	}
	// 5000 + 10000 + 2x3000
	if resp.Data.TotalPrice != 21000 {
		t.Fatalf("total salah: %v", resp.Data.TotalPrice)
	}
}

// advanceOrderTest memajukan status satu langkah tiap kali sampai habis
func advanceOrderTest(t *testing.T, r *gin.Engine, token string, orderID uint) {
	path := "/admin/orders/" + strconv.Itoa(int(orderID)) + "/status"

	for _, next := range []string{"confirmed", "preparing", "ready", "completed"} {
		w := postJSON(r, http.MethodPatch, path, token, map[string]string{"status": next})
		if w.Code != http.StatusOK {
			t.Fatalf("advance ke %s: code=%d, body=%s", next, w.Code, w.Body.String())
		}
	}

	// Setelah completed tidak ada langkah berikutnya
	w := postJSON(r, http.MethodPatch, path, token, map[string]string{"status": "pending"})
	if w.Code != http.StatusConflict {
		t.Fatalf("order completed tidak boleh berubah lagi, code=%d", w.Code)
	}
}

// TestGlobalRateLimit memastikan limiter per-IP benar-benar berjalan
// untuk route yang didaftarkan router, bukan hanya endpoint login.
func TestGlobalRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	db := setupIntegrationDB(t)
	verifier, err := auth.NewStaticVerifier("tehimas", "tehimas123", "Teh Imas")
	if err != nil {
		t.Fatalf("verifier: %v", err)
	}
	r := router.SetupRouter(db, composer.NewRegistry(),
		whatsapp.NewService("6281234567890", nil),
		verifier, auth.NewMemorySessionStore(),
		middlewares.NewRateLimiter(2, 60))

	for i := 0; i < 2; i++ {
		w := postJSON(r, http.MethodGet, "/ping", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: code=%d, body=%s", i+1, w.Code, w.Body.String())
		}
	}

	w := postJSON(r, http.MethodGet, "/ping", "", nil)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("request ketiga harus dibatasi, code=%d", w.Code)
	}
}

func checkDashboardTest(t *testing.T, r *gin.Engine, token string) {
	w := postJSON(r, http.MethodGet, "/admin/dashboard", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard: code=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			TodayOrders      int     `json:"today_orders"`
			TodayRevenue     float64 `json:"today_revenue"`
			PopularVariation string  `json:"popular_variation"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.TodayOrders != 1 {
		t.Fatalf("dashboard: today_orders=%d", resp.Data.TodayOrders)
	}
	if resp.Data.TodayRevenue != 21000 {
		t.Fatalf("dashboard: today_revenue=%v", resp.Data.TodayRevenue)
	}
	if resp.Data.PopularVariation != "Seblak Original" {
		t.Fatalf("dashboard: popular_variation=%s", resp.Data.PopularVariation)
	}
}
