package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offering(id int, title string, price int64) ServiceOffering {
	return ServiceOffering{ID: id, Title: title, ListPrice: Money(price)}
}

func TestCart_ZeroValueIsEmpty(t *testing.T) {
	var c Cart

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.ItemCount())
	assert.Equal(t, Money(0), c.Total())
	assert.Empty(t, c.Items())
}

func TestCart_AddItem_CountAndTotal(t *testing.T) {
	var c Cart
	now := time.Now()

	prices := []int64{8000, 20000, 45000, 5000}
	var want Money
	for i, p := range prices {
		c.AddItem(offering(i+1, "svc", p), now)
		want += Money(p)

		assert.Equal(t, i+1, c.ItemCount())
		assert.Equal(t, want, c.Total())
	}
}

func TestCart_AddItem_DuplicatesAreIndependent(t *testing.T) {
	var c Cart
	o := offering(1, "Portfolio Website", 8000)

	c.AddItem(o, time.Now())
	c.AddItem(o, time.Now())

	require.Equal(t, 2, c.ItemCount())
	assert.Equal(t, Money(16000), c.Total())
}

func TestCart_AddItem_KeepsInsertionOrder(t *testing.T) {
	var c Cart
	c.AddItem(offering(3, "E-Commerce Store", 45000), time.Now())
	c.AddItem(offering(1, "Portfolio Website", 8000), time.Now())

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].ID)
	assert.Equal(t, 1, items[1].ID)
}

func TestCart_Items_ReturnsCopy(t *testing.T) {
	var c Cart
	c.AddItem(offering(1, "Portfolio Website", 8000), time.Now())

	items := c.Items()
	items[0].Title = "changed"

	assert.Equal(t, "Portfolio Website", c.Items()[0].Title)
}

func TestCart_AddItem_CopiesOffering(t *testing.T) {
	var c Cart
	o := offering(1, "Portfolio Website", 8000)
	c.AddItem(o, time.Now())

	o.ListPrice = 1

	assert.Equal(t, Money(8000), c.Total())
}

func TestCart_RemoveItem(t *testing.T) {
	var c Cart
	c.AddItem(offering(1, "a", 100), time.Now())
	c.AddItem(offering(2, "b", 200), time.Now())
	c.AddItem(offering(3, "c", 300), time.Now())

	removed, ok := c.RemoveItem(1)
	require.True(t, ok)
	assert.Equal(t, 2, removed.ID)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 3, items[1].ID)
	assert.Equal(t, Money(400), c.Total())
}

func TestCart_RemoveItem_OutOfRange(t *testing.T) {
	var c Cart
	c.AddItem(offering(1, "a", 100), time.Now())

	_, ok := c.RemoveItem(-1)
	assert.False(t, ok)
	_, ok = c.RemoveItem(1)
	assert.False(t, ok)
	assert.Equal(t, 1, c.ItemCount())
}

func TestMoney_FromMajor(t *testing.T) {
	m := FromMajor(8000)

	assert.Equal(t, Money(800000), m)
	assert.Equal(t, int64(8000), m.Major())
}

func TestMoney_ParseMajor(t *testing.T) {
	m, err := ParseMajor(MaxMajor)
	require.NoError(t, err)
	assert.Equal(t, int64(MaxMajor), m.Major())

	_, err = ParseMajor(MaxMajor + 1)
	assert.Error(t, err)
}
