package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validForm() CheckoutForm {
	return CheckoutForm{
		Name:  "Asha",
		Email: "a@b.com",
		Phone: "9876543210",
	}
}

func TestCheckoutForm_Validate_Valid(t *testing.T) {
	errs := validForm().Validate()

	assert.Empty(t, errs)
}

func TestCheckoutForm_Validate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(f *CheckoutForm)
		field string
		want  string
	}{
		{"empty name", func(f *CheckoutForm) { f.Name = "" }, FieldName, "Name is required"},
		{"blank name", func(f *CheckoutForm) { f.Name = "   " }, FieldName, "Name is required"},
		{"empty email", func(f *CheckoutForm) { f.Email = "" }, FieldEmail, "Email is required"},
		{"invalid email", func(f *CheckoutForm) { f.Email = "not-an-email" }, FieldEmail, "Email is invalid"},
		{"email without tld", func(f *CheckoutForm) { f.Email = "a@b" }, FieldEmail, "Email is invalid"},
		{"blank email", func(f *CheckoutForm) { f.Email = "   " }, FieldEmail, "Email is invalid"},
		{"empty phone", func(f *CheckoutForm) { f.Phone = "" }, FieldPhone, "Phone is required"},
		{"blank phone", func(f *CheckoutForm) { f.Phone = "\t" }, FieldPhone, "Phone is required"},
		{"long name", func(f *CheckoutForm) { f.Name = strings.Repeat("a", MaxNameLength+1) }, FieldName, "Name must be at most 150 characters"},
		{"long email", func(f *CheckoutForm) { f.Email = strings.Repeat("a", MaxEmailLength) + "@b.com" }, FieldEmail, "Email must be at most 150 characters"},
		{"long phone", func(f *CheckoutForm) { f.Phone = strings.Repeat("9", MaxPhoneLength+1) }, FieldPhone, "Phone must be at most 30 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.edit(&f)

			errs := f.Validate()

			assert.Len(t, errs, 1)
			assert.Equal(t, tt.want, errs[tt.field])
		})
	}
}

func TestCheckoutForm_Validate_LimitsCountCharacters(t *testing.T) {
	f := validForm()
	f.Name = strings.Repeat("अ", MaxNameLength)
	f.Phone = strings.Repeat("9", MaxPhoneLength)

	assert.Empty(t, f.Validate())
}

func TestCheckoutForm_Validate_RequirementsOptional(t *testing.T) {
	f := validForm()
	f.Requirements = ""

	assert.NotContains(t, f.Validate(), FieldRequirements)
}

func TestCheckoutForm_Validate_AllMissing(t *testing.T) {
	errs := CheckoutForm{}.Validate()

	assert.Len(t, errs, 3)
	assert.Contains(t, errs, FieldName)
	assert.Contains(t, errs, FieldEmail)
	assert.Contains(t, errs, FieldPhone)
}

func TestCheckoutForm_Set(t *testing.T) {
	var f CheckoutForm

	assert.True(t, f.Set(FieldName, "Asha"))
	assert.True(t, f.Set(FieldEmail, "a@b.com"))
	assert.True(t, f.Set(FieldPhone, "123"))
	assert.True(t, f.Set(FieldRequirements, "dark mode"))
	assert.False(t, f.Set("address", "x"))

	assert.Equal(t, CheckoutForm{Name: "Asha", Email: "a@b.com", Phone: "123", Requirements: "dark mode"}, f)
}

func TestNewCheckoutFlow(t *testing.T) {
	now := time.Now()
	flow := NewCheckoutFlow(now)

	assert.Equal(t, StepSummary, flow.Step)
	assert.Equal(t, CheckoutForm{}, flow.Form)
	assert.Empty(t, flow.Errors)
	assert.False(t, flow.IsSubmitting)
	assert.Equal(t, now, flow.OpenedAt)
	assert.NotEqual(t, NewCheckoutFlow(now).ID, flow.ID)
}
