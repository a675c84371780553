package dto

import (
	"github.com/google/uuid"

	"portfolio/internal/domain"
	"portfolio/internal/pricing"
)

// Pricer computes the discounted price of one offering.
type Pricer interface {
	ForOffering(o domain.ServiceOffering) pricing.Breakdown
}

func NewPriceDTO(b pricing.Breakdown) PriceDTO {
	return PriceDTO{
		Original:        int64(b.Original),
		Discount:        int64(b.Discount),
		Final:           int64(b.Final),
		Percentage:      b.Percentage,
		OriginalDisplay: pricing.Format(b.Original),
		FinalDisplay:    pricing.Format(b.Final),
	}
}

func NewLineItemDTO(index int, item domain.CartLineItem, pricer Pricer) LineItemDTO {
	return LineItemDTO{
		Index:     index,
		ServiceID: item.ID,
		Title:     item.Title,
		Price:     NewPriceDTO(pricer.ForOffering(item.ServiceOffering)),
		AddedAt:   item.AddedAt,
	}
}

// NewCartResponse expects the caller to hold the session lock.
func NewCartResponse(cart *domain.Cart, pricer Pricer) CartResponse {
	items := cart.Items()
	resp := CartResponse{
		Items:     make([]LineItemDTO, 0, len(items)),
		ItemCount: len(items),
		Total:     int64(cart.Total()),
	}

	var payable domain.Money
	for i, item := range items {
		line := NewLineItemDTO(i, item, pricer)
		payable += domain.Money(line.Price.Final)
		resp.Items = append(resp.Items, line)
	}

	resp.TotalDisplay = pricing.Format(cart.Total())
	resp.PayableTotal = int64(payable)
	resp.PayableTotalDisplay = pricing.Format(payable)
	return resp
}

// NewCheckoutResponse renders a flow; a nil flow is the closed panel.
func NewCheckoutResponse(flow *domain.CheckoutFlow, cart *CartResponse) *CheckoutResponse {
	if flow == nil {
		return &CheckoutResponse{Open: false, Cart: cart}
	}

	errs := make(map[string]string, len(flow.Errors))
	for k, v := range flow.Errors {
		errs[k] = v
	}

	resp := &CheckoutResponse{
		Open:   true,
		FlowID: flow.ID.String(),
		Step:   string(flow.Step),
		Form: &CheckoutFormDTO{
			Name:         flow.Form.Name,
			Email:        flow.Form.Email,
			Phone:        flow.Form.Phone,
			Requirements: flow.Form.Requirements,
		},
		Errors:        errs,
		IsSubmitting:  flow.IsSubmitting,
		SubmitMessage: flow.SubmitMessage,
		PendingStep:   string(flow.PendingStep),
		CanProceed:    flow.Step == domain.StepSummary && cart != nil && cart.ItemCount > 0,
		Cart:          cart,
	}
	if !flow.TransitionAt.IsZero() {
		at := flow.TransitionAt
		resp.TransitionAt = &at
	}
	if flow.LastOrderID != uuid.Nil {
		resp.OrderID = flow.LastOrderID.String()
	}
	return resp
}

func NewOrderResponse(order *domain.OrderRequest) OrderResponse {
	return OrderResponse{
		OrderID:      order.ID.String(),
		Outcome:      string(order.Outcome),
		Message:      order.Message,
		ItemCount:    len(order.Items),
		Total:        int64(order.Total),
		PayableTotal: int64(order.PayableTotal),
		CreatedAt:    order.CreatedAt,
	}
}
