package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func snap(id uint, name string, price float64) ItemSnapshot {
	return ItemSnapshot{ID: id, Name: name, Price: price}
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	c := New()
	c.AddItem(snap(1, "Seblak Kerupuk", 10000))
	c.AddItem(snap(1, "Seblak Kerupuk", 10000))
	c.AddItem(snap(2, "Es Teh", 5000))

	lines := c.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestChangeQuantityRemovesLineAtZero(t *testing.T) {
	c := New()
	c.AddItem(snap(1, "Seblak Kerupuk", 10000))
	c.AddItem(snap(1, "Seblak Kerupuk", 10000))

	c.ChangeQuantity(1, -1)
	assert.Equal(t, 1, c.Lines()[0].Quantity)

	c.ChangeQuantity(1, -1)
	assert.Empty(t, c.Lines(), "baris kuantitas nol harus hilang, bukan tersisa")
}

func TestChangeQuantityBigNegativeDeltaRemoves(t *testing.T) {
	c := New()
	c.AddItem(snap(1, "Seblak Kerupuk", 10000))
	c.ChangeQuantity(1, -100)
	assert.Empty(t, c.Lines())
}

func TestChangeQuantityUnknownIDIsNoop(t *testing.T) {
	c := New()
	c.AddItem(snap(1, "Seblak Kerupuk", 10000))
	c.ChangeQuantity(99, 5)

	lines := c.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

// Tidak peduli urutan add/change, tidak boleh ada baris dengan
// kuantitas <= 0 di state.
func TestNoZeroQuantityLinesEver(t *testing.T) {
	c := New()
	ops := []struct {
		id    uint
		delta int
	}{
		{1, 3}, {2, 1}, {1, -2}, {2, -1}, {2, -1}, {3, -5}, {1, 1}, {1, -10},
	}
	c.AddItem(snap(1, "A", 1000))
	c.AddItem(snap(2, "B", 2000))
	for _, op := range ops {
		c.ChangeQuantity(op.id, op.delta)
		for _, line := range c.Lines() {
			assert.Greater(t, line.Quantity, 0)
		}
	}
}

func TestTotalCartOnly(t *testing.T) {
	c := New()
	c.AddItem(snap(1, "A", 10000))
	c.ChangeQuantity(1, 1) // qty 2
	c.AddItem(snap(2, "B", 15000))

	assert.Equal(t, float64(35000), c.Total())
}

func TestTotalVariationPlusToppings(t *testing.T) {
	c := New()
	c.SelectVariation(&ItemSnapshot{ID: 1, Name: "Seblak Original", Price: 10000})
	c.SetToppingQuantity(snap(5, "Bakso", 3000), 2)

	assert.Equal(t, float64(16000), c.Total())
}

func TestTotalRecomputedAfterEveryMutation(t *testing.T) {
	c := New()
	c.SelectVariation(&ItemSnapshot{ID: 1, Name: "Original", Price: 10000})
	assert.Equal(t, float64(10000), c.Total())

	c.SetToppingQuantity(snap(5, "Bakso", 3000), 1)
	assert.Equal(t, float64(13000), c.Total())

	c.SetToppingQuantity(snap(5, "Bakso", 3000), -1)
	assert.Equal(t, float64(10000), c.Total())

	c.SelectVariation(nil)
	assert.Equal(t, float64(0), c.Total())
}

func TestToppingRemovedAtZeroQuantity(t *testing.T) {
	c := New()
	c.SetToppingQuantity(snap(5, "Bakso", 3000), 2)
	c.SetToppingQuantity(snap(5, "Bakso", 3000), -2)
	assert.Empty(t, c.ToppingLines())

	// delta negatif untuk topping yang tidak ada: no-op
	c.SetToppingQuantity(snap(6, "Ceker", 4000), -1)
	assert.Empty(t, c.ToppingLines())
}

func TestVariationIsMutuallyExclusive(t *testing.T) {
	c := New()
	c.SelectVariation(&ItemSnapshot{ID: 1, Name: "Original", Price: 10000})
	c.SelectVariation(&ItemSnapshot{ID: 2, Name: "Ceker", Price: 13000})

	v := c.Variation()
	assert.NotNil(t, v)
	assert.Equal(t, uint(2), v.ID)
	assert.Equal(t, float64(13000), c.Total())
}

func TestToggleVegetableTwiceRestoresSelection(t *testing.T) {
	c := New()
	c.ToggleVegetable("Kangkung")
	c.ToggleVegetable("Tauge")
	before := c.Vegetables()

	c.ToggleVegetable("Kol")
	c.ToggleVegetable("Kol")

	assert.Equal(t, before, c.Vegetables())
}

func TestToggleFlavorAddsAndRemoves(t *testing.T) {
	c := New()
	c.ToggleFlavor("Keju")
	assert.Equal(t, []string{"Keju"}, c.Flavors())
	c.ToggleFlavor("Keju")
	assert.Empty(t, c.Flavors())
}

func TestUnknownOptionsIgnored(t *testing.T) {
	c := New()
	c.ToggleVegetable("Brokoli")
	c.ToggleFlavor("Balado")
	c.SetServingStyle("goreng")
	c.SetEatingStyle("delivery")
	c.SetSpiceLevel(0)
	c.SetSpiceLevel(6)

	assert.Empty(t, c.Vegetables())
	assert.Empty(t, c.Flavors())
	assert.Equal(t, DefaultServingStyle, c.ServingStyle())
	assert.Equal(t, DefaultEatingStyle, c.EatingStyle())
	assert.Equal(t, DefaultSpiceLevel, c.SpiceLevel())
}

func TestDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, 3, c.SpiceLevel())
	assert.Equal(t, "kuah", c.ServingStyle())
	assert.Equal(t, "di-tempat", c.EatingStyle())
	assert.True(t, c.IsEmpty())
	assert.Equal(t, float64(0), c.Total())
}

func TestResetClearsEverything(t *testing.T) {
	c := New()
	c.AddItem(snap(1, "A", 10000))
	c.SelectVariation(&ItemSnapshot{ID: 2, Name: "V", Price: 5000})
	c.SetToppingQuantity(snap(3, "T", 2000), 3)
	c.SetSpiceLevel(5)
	c.ToggleVegetable("Bayam")
	c.SetNotes("Pedasnya mantap")

	c.Reset()

	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.ToppingLines())
	assert.Equal(t, DefaultSpiceLevel, c.SpiceLevel())
	assert.Empty(t, c.Vegetables())
	assert.Empty(t, c.Notes())
	assert.Equal(t, StepComposing, c.Step())
}

func TestSetNotesTrimsAndClears(t *testing.T) {
	c := New()
	c.SetNotes("  Jangan pakai bawang  ")
	assert.Equal(t, "Jangan pakai bawang", c.Notes())

	c.SetNotes("")
	assert.Empty(t, c.Notes())
}
