package composer

import (
	"errors"
	"regexp"
	"strings"
)

// Step adalah tahapan alur checkout.
type Step string

const (
	StepComposing            Step = "composing"
	StepAwaitingCustomerInfo Step = "awaiting_customer_info"
	StepSubmitting           Step = "submitting"
)

var (
	ErrNothingSelected = errors.New("belum ada item atau variasi yang dipilih")
	ErrWrongStep       = errors.New("langkah checkout tidak valid")
	ErrEmptyName       = errors.New("nama tidak boleh kosong")
	ErrEmptyPhone      = errors.New("nomor WhatsApp tidak boleh kosong")
	ErrInvalidPhone    = errors.New("format nomor WhatsApp tidak valid")
)

// phonePattern sengaja permisif: digit, +, -, spasi, dan tanda kurung.
var phonePattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)

// Submission adalah potret lengkap pesanan saat pelanggan menekan kirim.
// Setelah ini dibuat, composer boleh di-reset tanpa kehilangan data order.
type Submission struct {
	CustomerName  string
	CustomerPhone string
	Lines         []CartLine
	Variation     *ItemSnapshot
	Toppings      []ToppingLine
	SpiceLevel    int
	ServingStyle  string
	EatingStyle   string
	Vegetables    []string
	Flavors       []string
	Notes         string
	Total         float64
}

// Customized bernilai true jika pesanan membawa kustomisasi parasmanan.
func (s *Submission) Customized() bool {
	return s.Variation != nil || len(s.Toppings) > 0
}

// Step mengembalikan tahap checkout saat ini.
func (c *Composer) Step() Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// BeginCheckout pindah ke pengisian data pelanggan. Ditolak bila belum
// ada pilihan apa pun atau total masih nol.
func (c *Composer) BeginCheckout() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.step != StepComposing {
		return ErrWrongStep
	}
	if c.isEmptyLocked() || c.totalLocked() <= 0 {
		return ErrNothingSelected
	}
	c.step = StepAwaitingCustomerInfo
	return nil
}

// CancelCheckout kembali ke tahap menyusun tanpa membuang isi keranjang.
func (c *Composer) CancelCheckout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.step == StepAwaitingCustomerInfo {
		c.step = StepComposing
	}
}

// Submit memvalidasi data pelanggan lalu memotret pesanan. Validasi
// gagal membiarkan state tetap di pengisian data, tanpa panggilan backend.
func (c *Composer) Submit(name, phone string) (*Submission, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.step != StepAwaitingCustomerInfo {
		return nil, ErrWrongStep
	}

	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return nil, ErrEmptyName
	}
	if phone == "" {
		return nil, ErrEmptyPhone
	}
	if !phonePattern.MatchString(phone) {
		return nil, ErrInvalidPhone
	}

	c.step = StepSubmitting

	sub := &Submission{
		CustomerName:  name,
		CustomerPhone: phone,
		Lines:         append([]CartLine(nil), c.lines...),
		Toppings:      c.toppingLinesLocked(),
		SpiceLevel:    c.spiceLevel,
		ServingStyle:  c.servingStyle,
		EatingStyle:   c.eatingStyle,
		Vegetables:    append([]string(nil), c.vegetables...),
		Flavors:       append([]string(nil), c.flavors...),
		Notes:         c.notes,
		Total:         c.totalLocked(),
	}
	if c.variation != nil {
		v := *c.variation
		sub.Variation = &v
	}
	return sub, nil
}

// Complete menutup satu kali checkout: composer dikosongkan dan kembali
// ke tahap menyusun, apa pun hasil penyimpanan. Kegagalan penyimpanan
// dicatat sebagai anotasi non-fatal yang bisa dibaca sekali.
func (c *Composer) Complete(persistErr error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetLocked()
	if persistErr != nil {
		c.lastError = persistErr.Error()
	} else {
		c.lastError = ""
	}
}

// TakeError mengambil (dan menghapus) anotasi error checkout terakhir.
func (c *Composer) TakeError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	err := c.lastError
	c.lastError = ""
	return err
}
