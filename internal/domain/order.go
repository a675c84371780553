package domain

import (
	"time"

	"github.com/google/uuid"
)

type DispatchOutcome string

const (
	OutcomeSent      DispatchOutcome = "SENT"
	OutcomeSimulated DispatchOutcome = "SIMULATED"
	OutcomeFailed    DispatchOutcome = "FAILED"
)

// DispatchResult is what the user is told, plus what actually happened.
type DispatchResult struct {
	Success bool
	Message string
	Outcome DispatchOutcome
}

// OrderRequest is the ledger record of one checkout submission.
type OrderRequest struct {
	ID           uuid.UUID
	SessionID    string
	Customer     CheckoutForm
	Items        []CartLineItem
	Total        Money
	PayableTotal Money
	Outcome      DispatchOutcome
	Message      string
	CreatedAt    time.Time
}

type ContactRequest struct {
	Name    string
	Email   string
	Message string
}
