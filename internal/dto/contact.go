package dto

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// DispatchResponse reports a delivery attempt. Success=false is not an
// HTTP error; the message tells the visitor what to do.
type DispatchResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Outcome string `json:"outcome"`
}
