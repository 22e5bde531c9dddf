package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bread() Product {
	return Product{ID: 1, Name: "Бородинский хлеб", Price: 85, Category: "Хлеб"}
}

func TestCartAddMerges(t *testing.T) {
	c := NewCart()

	c.Add(bread())
	c.Add(bread())

	items := c.Items()
	require.Len(t, items, 1, "adding the same product must merge, not duplicate")
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 170.0, c.Total())
}

func TestCartAddCopiesProduct(t *testing.T) {
	c := NewCart()
	p := bread()
	c.Add(p)

	// Mutating the caller's product after add must not reach the cart.
	p.Price = 999

	items := c.Items()
	assert.Equal(t, 85.0, items[0].Price)
}

func TestCartSetQuantityZeroRemoves(t *testing.T) {
	for _, qty := range []int{0, -1, -100} {
		c := NewCart()
		c.Add(bread())

		c.SetQuantity(1, qty)

		assert.Empty(t, c.Items())
		assert.Equal(t, 0.0, c.Total())
	}
}

func TestCartSetQuantityIsAbsolute(t *testing.T) {
	c := NewCart()
	c.Add(bread())
	c.Add(bread())

	require.True(t, c.SetQuantity(1, 5))

	items := c.Items()
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 425.0, c.Total())
}

func TestCartSetQuantityUnknownID(t *testing.T) {
	c := NewCart()
	assert.False(t, c.SetQuantity(9, 3))
	assert.Empty(t, c.Items())
}

func TestCartRemove(t *testing.T) {
	c := NewCart()
	c.Add(bread())
	c.Add(Product{ID: 2, Name: "Эклер", Price: 75})

	assert.True(t, c.Remove(1))
	assert.False(t, c.Remove(1))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ID)
}

func TestCartTotalMatchesRecomputation(t *testing.T) {
	c := NewCart()
	products := []Product{
		{ID: 1, Price: 85},
		{ID: 2, Price: 45},
		{ID: 3, Price: 65},
	}

	c.Add(products[0])
	c.Add(products[1])
	c.Add(products[0])
	c.Add(products[2])
	c.SetQuantity(2, 4)
	c.Remove(3)
	c.Add(products[2])
	c.SetQuantity(1, 0)

	var want float64
	for _, it := range c.Items() {
		want += it.Price * float64(it.Quantity)
	}
	assert.Equal(t, want, c.Total())
}

func TestCartClear(t *testing.T) {
	c := NewCart()
	c.Add(bread())
	c.Clear()

	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0.0, c.Total())
}

func TestCartItemsReturnsCopy(t *testing.T) {
	c := NewCart()
	c.Add(bread())

	items := c.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, c.Items()[0].Quantity)
}
