package dto

import "time"

type CheckoutFormDTO struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Requirements string `json:"requirements"`
}

// CheckoutResponse describes the checkout panel. Open=false means the
// panel is closed and the other fields are empty.
type CheckoutResponse struct {
	Open          bool              `json:"open"`
	FlowID        string            `json:"flowId,omitempty"`
	Step          string            `json:"step,omitempty"`
	Form          *CheckoutFormDTO  `json:"form,omitempty"`
	Errors        map[string]string `json:"errors,omitempty"`
	IsSubmitting  bool              `json:"isSubmitting"`
	SubmitMessage string            `json:"submitMessage,omitempty"`
	PendingStep   string            `json:"pendingStep,omitempty"`
	TransitionAt  *time.Time        `json:"transitionAt,omitempty"`
	OrderID       string            `json:"orderId,omitempty"`
	CanProceed    bool              `json:"canProceed"`
	Cart          *CartResponse     `json:"cart,omitempty"`
}

// UpdateFormRequest carries the fields being edited; absent fields are
// left untouched.
type UpdateFormRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Requirements *string `json:"requirements"`
}

type OrderResponse struct {
	OrderID      string    `json:"orderId"`
	Outcome      string    `json:"outcome"`
	Message      string    `json:"message"`
	ItemCount    int       `json:"itemCount"`
	Total        int64     `json:"total"`
	PayableTotal int64     `json:"payableTotal"`
	CreatedAt    time.Time `json:"createdAt"`
}
