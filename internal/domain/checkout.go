package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type CheckoutStep string

const (
	StepSummary CheckoutStep = "summary"
	StepForm    CheckoutStep = "form"
	StepSuccess CheckoutStep = "success"
)

const (
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldRequirements = "requirements"
)

// Field limits match the order ledger columns.
const (
	MaxNameLength  = 150
	MaxEmailLength = 150
	MaxPhoneLength = 30
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type CheckoutForm struct {
	Name         string
	Email        string
	Phone        string
	Requirements string
}

// FormErrors maps a field name to its validation message.
type FormErrors map[string]string

// Set assigns a field by name. Unknown fields are rejected.
func (f *CheckoutForm) Set(field, value string) bool {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	case FieldRequirements:
		f.Requirements = value
	default:
		return false
	}
	return true
}

// Validate checks the required fields. Requirements never fails.
func (f CheckoutForm) Validate() FormErrors {
	errs := FormErrors{}

	switch {
	case strings.TrimSpace(f.Name) == "":
		errs[FieldName] = "Name is required"
	case tooLong(f.Name, MaxNameLength):
		errs[FieldName] = fmt.Sprintf("Name must be at most %d characters", MaxNameLength)
	}

	switch {
	case f.Email == "":
		errs[FieldEmail] = "Email is required"
	case tooLong(f.Email, MaxEmailLength):
		errs[FieldEmail] = fmt.Sprintf("Email must be at most %d characters", MaxEmailLength)
	case !IsValidEmail(f.Email):
		errs[FieldEmail] = "Email is invalid"
	}

	switch {
	case strings.TrimSpace(f.Phone) == "":
		errs[FieldPhone] = "Phone is required"
	case tooLong(f.Phone, MaxPhoneLength):
		errs[FieldPhone] = fmt.Sprintf("Phone must be at most %d characters", MaxPhoneLength)
	}

	return errs
}

func tooLong(s string, limit int) bool {
	return utf8.RuneCountInString(s) > limit
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// CheckoutFlow is the state of one open checkout panel. A session without
// a flow is closed.
type CheckoutFlow struct {
	ID            uuid.UUID
	Step          CheckoutStep
	Form          CheckoutForm
	Errors        FormErrors
	IsSubmitting  bool
	SubmitMessage string
	// PendingStep is set while a delayed transition is scheduled.
	PendingStep  CheckoutStep
	TransitionAt time.Time
	LastOrderID  uuid.UUID
	OpenedAt     time.Time
}

func NewCheckoutFlow(now time.Time) *CheckoutFlow {
	return &CheckoutFlow{
		ID:       uuid.New(),
		Step:     StepSummary,
		Errors:   FormErrors{},
		OpenedAt: now,
	}
}
