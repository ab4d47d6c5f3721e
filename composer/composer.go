// Package composer memegang keranjang dan kustomisasi pesanan pelanggan
// sebelum checkout, plus alur checkout ke penyimpanan dan WhatsApp.
package composer

import (
	"strings"
	"sync"
)

// Pilihan kustomisasi parasmanan. Nilai di luar daftar ini diabaikan.
var (
	ServingStyles    = []string{"kuah", "kering"}
	EatingStyles     = []string{"di-tempat", "dibungkus"}
	VegetableOptions = []string{"Kangkung", "Tauge", "Kol", "Sawi", "Bayam"}
	FlavorOptions    = []string{"Original", "Keju", "Pedas Manis", "Asam Pedas", "Gurih"}
)

const (
	DefaultSpiceLevel   = 3
	DefaultServingStyle = "kuah"
	DefaultEatingStyle  = "di-tempat"
)

// ItemSnapshot adalah potret menu saat dimasukkan ke keranjang; harga
// di keranjang tidak berubah walau harga menu berubah.
type ItemSnapshot struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type CartLine struct {
	Item     ItemSnapshot `json:"item"`
	Quantity int          `json:"quantity"`
}

type ToppingLine struct {
	Topping  ItemSnapshot `json:"topping"`
	Quantity int          `json:"quantity"`
}

// Composer adalah state pesanan yang sedang disusun satu pelanggan.
// Semua operasinya total: tidak ada error, delta di luar batas hanya
// menghapus baris.
type Composer struct {
	mu sync.Mutex

	lines     []CartLine
	variation *ItemSnapshot
	toppings  map[uint]*ToppingLine
	// urutan topping sesuai pertama kali dipilih, untuk ringkasan yang stabil
	toppingOrder []uint

	spiceLevel   int
	servingStyle string
	eatingStyle  string
	vegetables   []string
	flavors      []string
	notes        string

	step      Step
	lastError string
}

func New() *Composer {
	c := &Composer{}
	c.resetLocked()
	return c
}

func (c *Composer) resetLocked() {
	c.lines = nil
	c.variation = nil
	c.toppings = make(map[uint]*ToppingLine)
	c.toppingOrder = nil
	c.spiceLevel = DefaultSpiceLevel
	c.servingStyle = DefaultServingStyle
	c.eatingStyle = DefaultEatingStyle
	c.vegetables = nil
	c.flavors = nil
	c.notes = ""
	c.step = StepComposing
}

// Reset mengosongkan seluruh state kembali ke kondisi awal.
func (c *Composer) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

// AddItem menambah satu ke baris keranjang untuk item tersebut, atau
// membuat baris baru dengan kuantitas 1.
func (c *Composer) AddItem(item ItemSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{Item: item, Quantity: 1})
}

// ChangeQuantity menambahkan delta ke kuantitas baris. Hasil <= 0
// menghapus barisnya; id yang tidak ada adalah no-op.
func (c *Composer) ChangeQuantity(itemID uint, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Item.ID != itemID {
			continue
		}
		c.lines[i].Quantity += delta
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

// SelectVariation mengganti variasi terpilih; hanya satu variasi yang
// bisa aktif. nil berarti tidak ada variasi.
func (c *Composer) SelectVariation(v *ItemSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.variation = v
}

// SetToppingQuantity menambahkan delta ke kuantitas topping, dengan
// aturan hapus-saat-nol yang sama dengan baris keranjang.
func (c *Composer) SetToppingQuantity(topping ItemSnapshot, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line, ok := c.toppings[topping.ID]
	if !ok {
		if delta <= 0 {
			return
		}
		c.toppings[topping.ID] = &ToppingLine{Topping: topping, Quantity: delta}
		c.toppingOrder = append(c.toppingOrder, topping.ID)
		return
	}

	line.Quantity += delta
	if line.Quantity <= 0 {
		delete(c.toppings, topping.ID)
		for i, id := range c.toppingOrder {
			if id == topping.ID {
				c.toppingOrder = append(c.toppingOrder[:i], c.toppingOrder[i+1:]...)
				break
			}
		}
	}
}

// SetSpiceLevel menerima level 1..5; di luar itu diabaikan.
func (c *Composer) SetSpiceLevel(level int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if level >= 1 && level <= 5 {
		c.spiceLevel = level
	}
}

func (c *Composer) SetServingStyle(style string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if contains(ServingStyles, style) {
		c.servingStyle = style
	}
}

func (c *Composer) SetEatingStyle(style string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if contains(EatingStyles, style) {
		c.eatingStyle = style
	}
}

// ToggleVegetable menambah/menghapus sayur dari pilihan. Toggle dua kali
// mengembalikan pilihan ke keadaan semula.
func (c *Composer) ToggleVegetable(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if contains(VegetableOptions, name) {
		c.vegetables = toggle(c.vegetables, name)
	}
}

func (c *Composer) ToggleFlavor(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if contains(FlavorOptions, name) {
		c.flavors = toggle(c.flavors, name)
	}
}

// SetNotes mengganti catatan bebas pesanan; string kosong menghapusnya.
func (c *Composer) SetNotes(notes string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notes = strings.TrimSpace(notes)
}

// Total menghitung ulang harga dari nol setiap kali dipanggil:
// jumlah baris keranjang + harga dasar variasi + jumlah topping.
func (c *Composer) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalLocked()
}

func (c *Composer) totalLocked() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Item.Price * float64(line.Quantity)
	}
	if c.variation != nil {
		total += c.variation.Price
	}
	for _, id := range c.toppingOrder {
		line := c.toppings[id]
		total += line.Topping.Price * float64(line.Quantity)
	}
	return total
}

// IsEmpty bernilai true saat belum ada item ataupun variasi terpilih.
func (c *Composer) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isEmptyLocked()
}

func (c *Composer) isEmptyLocked() bool {
	return len(c.lines) == 0 && c.variation == nil
}

// Lines mengembalikan salinan baris keranjang, urut sesuai penambahan.
func (c *Composer) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Composer) Variation() *ItemSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.variation == nil {
		return nil
	}
	v := *c.variation
	return &v
}

// ToppingLines mengembalikan salinan baris topping, urut sesuai
// pertama kali dipilih.
func (c *Composer) ToppingLines() []ToppingLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.toppingLinesLocked()
}

func (c *Composer) toppingLinesLocked() []ToppingLine {
	out := make([]ToppingLine, 0, len(c.toppingOrder))
	for _, id := range c.toppingOrder {
		out = append(out, *c.toppings[id])
	}
	return out
}

func (c *Composer) SpiceLevel() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.spiceLevel
}

func (c *Composer) ServingStyle() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.servingStyle
}

func (c *Composer) EatingStyle() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eatingStyle
}

func (c *Composer) Vegetables() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.vegetables...)
}

func (c *Composer) Flavors() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.flavors...)
}

func (c *Composer) Notes() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notes
}

func contains(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}

func toggle(set []string, value string) []string {
	for i, v := range set {
		if v == value {
			return append(set[:i], set[i+1:]...)
		}
	}
	return append(set, value)
}
