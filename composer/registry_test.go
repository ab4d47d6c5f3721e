package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryCreateAndGet(t *testing.T) {
	r := NewRegistry()
	id, c := r.Create()
	assert.NotEmpty(t, id)

	got, err := r.Get(id)
	assert.NoError(t, err)
	assert.Same(t, c, got)
}

func TestRegistryUnknownSession(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("nope")
	assert.ErrorIs(t, err, ErrSessionUnknown)
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry()
	id, _ := r.Create()
	r.Remove(id)
	_, err := r.Get(id)
	assert.ErrorIs(t, err, ErrSessionUnknown)
}

func TestRegistrySessionsAreIndependent(t *testing.T) {
	r := NewRegistry()
	id1, c1 := r.Create()
	id2, c2 := r.Create()
	assert.NotEqual(t, id1, id2)

	c1.AddItem(ItemSnapshot{ID: 1, Name: "A", Price: 1000})
	assert.Len(t, c1.Lines(), 1)
	assert.Empty(t, c2.Lines())
}
