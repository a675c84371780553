package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio/internal/domain"
	"portfolio/internal/pricing"
)

type mockSender struct {
	SendFunc func(ctx context.Context, email Email) error
	sent     []Email
}

func (m *mockSender) Send(ctx context.Context, email Email) error {
	m.sent = append(m.sent, email)
	if m.SendFunc == nil {
		return nil
	}
	return m.SendFunc(ctx, email)
}

func testItems() []domain.CartLineItem {
	limit := domain.FromMajor(4000)
	return []domain.CartLineItem{
		{ServiceOffering: domain.ServiceOffering{ID: 1, Title: "Portfolio Website", ListPrice: domain.FromMajor(8000), DiscountCap: &limit}, AddedAt: time.Now()},
		{ServiceOffering: domain.ServiceOffering{ID: 6, Title: "Landing Page", ListPrice: domain.FromMajor(5000)}, AddedAt: time.Now()},
	}
}

func testCustomer() domain.CheckoutForm {
	return domain.CheckoutForm{
		Name:  "Priya Sharma",
		Email: "priya@example.com",
		Phone: "+91 98765 43210",
	}
}

func newTestDispatcher(sender Sender, opts Options) *Dispatcher {
	return NewDispatcher(sender, pricing.NewCalculator(pricing.DefaultDiscountCap), opts, zap.NewNop())
}

func TestSubmitOrder_Sent(t *testing.T) {
	sender := &mockSender{}
	d := newTestDispatcher(sender, Options{ToEmail: "studio@example.com"})

	result := d.SubmitOrder(context.Background(), testCustomer(), testItems(), domain.FromMajor(6500))

	assert.True(t, result.Success)
	assert.Equal(t, MessageOrderSent, result.Message)
	assert.Equal(t, domain.OutcomeSent, result.Outcome)

	require.Len(t, sender.sent, 1)
	params := sender.sent[0].Params
	assert.Equal(t, TemplateOrder, sender.sent[0].Template)
	assert.Equal(t, "Priya Sharma", params["customer_name"])
	assert.Equal(t, "- Portfolio Website: ₹4,000\n- Landing Page: ₹2,500", params["order_items"])
	assert.Equal(t, "₹6,500", params["total_price"])
	assert.Equal(t, NoRequirements, params["requirements"])
	assert.Equal(t, "studio@example.com", params["to_email"])
}

func TestSubmitOrder_KeepsRequirements(t *testing.T) {
	sender := &mockSender{}
	d := newTestDispatcher(sender, Options{})

	customer := testCustomer()
	customer.Requirements = "Dark theme please"
	d.SubmitOrder(context.Background(), customer, testItems(), 0)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Dark theme please", sender.sent[0].Params["requirements"])
}

func TestSubmitOrder_SendFails(t *testing.T) {
	sender := &mockSender{
		SendFunc: func(ctx context.Context, email Email) error {
			return errors.New("connection refused")
		},
	}
	d := newTestDispatcher(sender, Options{})

	result := d.SubmitOrder(context.Background(), testCustomer(), testItems(), 0)

	assert.False(t, result.Success)
	assert.Equal(t, MessageOrderFailed, result.Message)
	assert.Equal(t, domain.OutcomeFailed, result.Outcome)
}

func TestSubmitOrder_Unavailable(t *testing.T) {
	d := newTestDispatcher(nil, Options{})

	result := d.SubmitOrder(context.Background(), testCustomer(), testItems(), 0)

	assert.True(t, result.Success)
	assert.Equal(t, MessageSimulated, result.Message)
	assert.Equal(t, domain.OutcomeSimulated, result.Outcome)
}

func TestSubmitOrder_UnavailableSurfacesFailure(t *testing.T) {
	d := newTestDispatcher(nil, Options{SurfaceFailures: true})

	result := d.SubmitOrder(context.Background(), testCustomer(), testItems(), 0)

	assert.False(t, result.Success)
	assert.Equal(t, MessageOrderFailed, result.Message)
	assert.Equal(t, domain.OutcomeSimulated, result.Outcome)
}

func TestSubmitContact(t *testing.T) {
	tests := []struct {
		name    string
		sender  Sender
		opts    Options
		success bool
		message string
	}{
		{"sent", &mockSender{}, Options{}, true, MessageContactSent},
		{"failed", &mockSender{SendFunc: func(ctx context.Context, email Email) error { return errors.New("503") }}, Options{}, false, MessageContactFailed},
		{"simulated", nil, Options{}, true, MessageSimulated},
		{"simulated surfaced", nil, Options{SurfaceFailures: true}, false, MessageContactFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDispatcher(tt.sender, tt.opts)

			result := d.SubmitContact(context.Background(), domain.ContactRequest{
				Name:    "Rahul",
				Email:   "rahul@example.com",
				Message: "Need a portfolio site",
			})

			assert.Equal(t, tt.success, result.Success)
			assert.Equal(t, tt.message, result.Message)
		})
	}
}
