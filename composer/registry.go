package composer

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionUnknown = errors.New("composer session not found")

type entry struct {
	composer *Composer
	lastSeen time.Time
}

// Registry memetakan id sesi ke composer masing-masing pelanggan.
// Satu sesi = satu tab browser yang sedang menyusun pesanan.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	// sesi yang tidak disentuh selama maxIdle dibersihkan saat akses berikutnya
	maxIdle time.Duration
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*entry),
		maxIdle: 2 * time.Hour,
	}
}

// Create membuat sesi composer baru dan mengembalikan id-nya.
func (r *Registry) Create() (string, *Composer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked()

	id := uuid.NewString()
	c := New()
	r.entries[id] = &entry{composer: c, lastSeen: time.Now()}
	return id, c
}

// Get mengambil composer untuk sesi tersebut.
func (r *Registry) Get(id string) (*Composer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, ErrSessionUnknown
	}
	e.lastSeen = time.Now()
	return e.composer, nil
}

// Remove menghapus sesi (dipanggil saat pelanggan menutup halaman).
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

func (r *Registry) sweepLocked() {
	cutoff := time.Now().Add(-r.maxIdle)
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			delete(r.entries, id)
		}
	}
}
