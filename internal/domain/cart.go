package domain

import "time"

// CartLineItem is a copy of an offering taken when it was selected.
// Selecting the same offering twice yields two independent line items.
type CartLineItem struct {
	ServiceOffering
	AddedAt time.Time
}

// Cart keeps line items in insertion order. The zero value is an empty cart.
type Cart struct {
	items []CartLineItem
}

func (c *Cart) AddItem(offering ServiceOffering, at time.Time) CartLineItem {
	item := CartLineItem{ServiceOffering: offering, AddedAt: at}
	c.items = append(c.items, item)
	return item
}

// RemoveItem drops the item at index, keeping the order of the rest.
func (c *Cart) RemoveItem(index int) (CartLineItem, bool) {
	if index < 0 || index >= len(c.items) {
		return CartLineItem{}, false
	}
	removed := c.items[index]
	c.items = append(c.items[:index:index], c.items[index+1:]...)
	return removed, true
}

func (c *Cart) Items() []CartLineItem {
	out := make([]CartLineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) ItemCount() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Total() Money {
	var total Money
	for _, item := range c.items {
		total += item.ListPrice
	}
	return total
}
