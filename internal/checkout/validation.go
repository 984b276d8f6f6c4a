package checkout

import (
	"regexp"
	"strings"
)

// Form carries the shipping and payment fields from the checkout page.
type Form struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	PaymentMethod string `json:"payment_method"`
}

// Loose on purpose: the storefront only needs a text@text.text shape.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// PaymentMethodCard and PaymentMethodCOD are the two options the
// checkout page offers.
const (
	PaymentMethodCard = "card"
	PaymentMethodCOD  = "cod"
)

// ValidateForm checks every field in one pass and returns all
// violations keyed by field name. An empty map means the form is valid.
func ValidateForm(form Form) map[string]string {
	violations := map[string]string{}

	if strings.TrimSpace(form.FullName) == "" {
		violations["full_name"] = "Full name is required"
	}
	if strings.TrimSpace(form.Email) == "" {
		violations["email"] = "Email is required"
	} else if !emailPattern.MatchString(form.Email) {
		violations["email"] = "Email is invalid"
	}
	if strings.TrimSpace(form.Phone) == "" {
		violations["phone"] = "Phone number is required"
	}
	if strings.TrimSpace(form.Address) == "" {
		violations["address"] = "Address is required"
	}
	if strings.TrimSpace(form.City) == "" {
		violations["city"] = "City is required"
	}
	if strings.TrimSpace(form.State) == "" {
		violations["state"] = "State is required"
	}
	if strings.TrimSpace(form.ZipCode) == "" {
		violations["zip_code"] = "ZIP code is required"
	}

	switch form.PaymentMethod {
	case "", PaymentMethodCard, PaymentMethodCOD:
	default:
		violations["payment_method"] = "Payment method is invalid"
	}

	return violations
}
