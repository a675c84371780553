package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/commons"
	"portfolio/internal/pricing"
)

func TestWritePrices(t *testing.T) {
	file, err := commons.ParseCatalog([]byte(`
services:
  - id: 1
    title: Portfolio Website
    price: "₹8,000"
    maxDiscount: 4000
  - id: 4
    title: Custom Web App
    price: "₹65,000+"
`))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, writePrices(context.Background(), &out, file, pricing.NewCalculator(pricing.DefaultDiscountCap)))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "SERVICE")
	assert.Contains(t, lines[1], "₹4,000")
	assert.Contains(t, lines[1], "50%")
	assert.Contains(t, lines[2], "₹55,000")
	assert.Contains(t, lines[2], "15%")
}
