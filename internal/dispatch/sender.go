// Package dispatch delivers order and contact notifications through an
// external email collaborator, falling back to a local simulated send
// when none is configured.
package dispatch

import "context"

type Template string

const (
	TemplateOrder   Template = "order"
	TemplateContact Template = "contact"
)

// Email is one templated message. Params are substituted by the provider.
type Email struct {
	Template Template
	Params   map[string]string
}

// Sender is the email-sending collaborator.
type Sender interface {
	Send(ctx context.Context, email Email) error
}
