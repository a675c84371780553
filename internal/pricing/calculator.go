// Package pricing computes the promotional price of catalog offerings.
//
// Every offering is sold at half its list price, capped per offering by a
// maximum discount (or a default cap when the offering has none).
package pricing

import (
	"github.com/shopspring/decimal"

	"portfolio/internal/domain"
)

// DefaultDiscountCap is ₹10,000 in minor units.
const DefaultDiscountCap = domain.Money(10000 * domain.MinorPerMajor)

var half = decimal.NewFromFloat(0.5)

type Breakdown struct {
	Original   domain.Money
	Discount   domain.Money
	Final      domain.Money
	Percentage int64
}

type Calculator struct {
	defaultCap domain.Money
}

func NewCalculator(defaultCap domain.Money) *Calculator {
	if defaultCap < 0 {
		defaultCap = 0
	}
	return &Calculator{defaultCap: defaultCap}
}

// DiscountedPrice returns discount = min(listPrice*0.5, cap) and the
// resulting final price. A nil cap uses the calculator default.
func (c *Calculator) DiscountedPrice(listPrice domain.Money, discountCap *domain.Money) Breakdown {
	limit := c.defaultCap
	if discountCap != nil {
		limit = *discountCap
	}
	if limit < 0 {
		limit = 0
	}

	original := decimal.NewFromInt(int64(listPrice))
	// half of an odd amount rounds down so final never goes below 50%
	discount := decimal.Min(original.Mul(half).Floor(), decimal.NewFromInt(int64(limit)))
	if discount.IsNegative() {
		discount = decimal.Zero
	}

	var percentage int64
	if !original.IsZero() {
		percentage = discount.Div(original).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	}

	return Breakdown{
		Original:   listPrice,
		Discount:   domain.Money(discount.IntPart()),
		Final:      domain.Money(original.Sub(discount).IntPart()),
		Percentage: percentage,
	}
}

func (c *Calculator) ForOffering(o domain.ServiceOffering) Breakdown {
	return c.DiscountedPrice(o.ListPrice, o.DiscountCap)
}

// PayableTotal sums the discounted final price of every line item.
func (c *Calculator) PayableTotal(items []domain.CartLineItem) domain.Money {
	var total domain.Money
	for _, item := range items {
		total += c.ForOffering(item.ServiceOffering).Final
	}
	return total
}
