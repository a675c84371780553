package dispatch

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"portfolio/internal/domain"
	"portfolio/internal/pricing"
)

const (
	MessageSimulated     = "Message received! We'll get back to you soon."
	MessageOrderSent     = "Order confirmation sent! We'll contact you shortly."
	MessageOrderFailed   = "Order submitted locally. We'll contact you shortly."
	MessageContactSent   = "Message sent! We'll reply within 24 hours."
	MessageContactFailed = "Failed to send email. Please try again or contact directly."

	NoRequirements = "No specific requirements"
)

type Pricer interface {
	ForOffering(o domain.ServiceOffering) pricing.Breakdown
}

type Options struct {
	// SurfaceFailures reports the simulated path as a failure instead of
	// telling the customer the message went through.
	SurfaceFailures bool
	ToEmail         string
}

type Dispatcher struct {
	sender Sender
	pricer Pricer
	opts   Options
	logger *zap.Logger
}

// NewDispatcher accepts a nil sender, meaning no email provider is
// available.
func NewDispatcher(sender Sender, pricer Pricer, opts Options, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		pricer: pricer,
		opts:   opts,
		logger: logger,
	}
}

// SubmitOrder never fails; problems are reported in the result.
func (d *Dispatcher) SubmitOrder(ctx context.Context, customer domain.CheckoutForm, items []domain.CartLineItem, total domain.Money) domain.DispatchResult {
	requirements := customer.Requirements
	if strings.TrimSpace(requirements) == "" {
		requirements = NoRequirements
	}

	email := Email{
		Template: TemplateOrder,
		Params: map[string]string{
			"customer_name":  customer.Name,
			"customer_email": customer.Email,
			"customer_phone": customer.Phone,
			"order_items":    d.itemsList(items),
			"total_price":    formatWhole(total),
			"requirements":   requirements,
			"to_email":       d.opts.ToEmail,
		},
	}

	return d.send(ctx, email, MessageOrderSent, MessageOrderFailed)
}

func (d *Dispatcher) SubmitContact(ctx context.Context, req domain.ContactRequest) domain.DispatchResult {
	email := Email{
		Template: TemplateContact,
		Params: map[string]string{
			"from_name":  req.Name,
			"from_email": req.Email,
			"message":    req.Message,
			"to_email":   d.opts.ToEmail,
		},
	}

	return d.send(ctx, email, MessageContactSent, MessageContactFailed)
}

func (d *Dispatcher) send(ctx context.Context, email Email, sent, failed string) domain.DispatchResult {
	if d.sender == nil {
		return d.simulate(email, failed)
	}

	if err := d.sender.Send(ctx, email); err != nil {
		d.logger.Error("email send failed", zap.String("template", string(email.Template)), zap.Error(err))
		return domain.DispatchResult{Success: false, Message: failed, Outcome: domain.OutcomeFailed}
	}

	d.logger.Info("email sent", zap.String("template", string(email.Template)))
	return domain.DispatchResult{Success: true, Message: sent, Outcome: domain.OutcomeSent}
}

func (d *Dispatcher) simulate(email Email, failed string) domain.DispatchResult {
	d.logger.Warn("email provider not configured, logging message locally",
		zap.String("template", string(email.Template)),
		zap.Any("params", email.Params),
	)

	if d.opts.SurfaceFailures {
		return domain.DispatchResult{Success: false, Message: failed, Outcome: domain.OutcomeSimulated}
	}
	return domain.DispatchResult{Success: true, Message: MessageSimulated, Outcome: domain.OutcomeSimulated}
}

func (d *Dispatcher) itemsList(items []domain.CartLineItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		final := d.pricer.ForOffering(item.ServiceOffering).Final
		lines = append(lines, "- "+item.Title+": "+formatWhole(final))
	}
	return strings.Join(lines, "\n")
}

// formatWhole drops the minor units, as the order email shows whole rupees.
func formatWhole(m domain.Money) string {
	return pricing.Format(domain.FromMajor(m.Major()))
}
