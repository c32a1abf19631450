package usecase

import (
	"regexp"
	"strings"

	domainErrors "github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/errors"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/model"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{9,15}$`)
)

// CheckoutInput is buyer-entered data collected at checkout submission.
// Items may be empty, in which case the stored cart supplies the lines.
// PaymentID carries a pre-obtained payment confirmation, if any.
type CheckoutInput struct {
	Email           string
	ShippingAddress model.Address
	BillingAddress  *model.Address
	PaymentMethod   model.PaymentMethod
	PaymentID       string
	Items           []model.DraftLine
}

// ValidateCheckout checks required fields and returns one error per failing
// field. An empty result means the input may proceed to order placement.
func ValidateCheckout(input CheckoutInput) []domainErrors.FieldError {
	var fields []domainErrors.FieldError

	add := func(path, msg string) {
		fields = append(fields, domainErrors.FieldError{Msg: msg, Path: path})
	}

	if strings.TrimSpace(input.Email) == "" {
		add("email", "email is required")
	} else if !emailPattern.MatchString(input.Email) {
		add("email", "email is invalid")
	}

	validateAddress(input.ShippingAddress, "shippingAddress", add)
	if input.BillingAddress != nil {
		validateAddress(*input.BillingAddress, "billingAddress", add)
	}

	if !input.PaymentMethod.Valid() {
		add("paymentMethod", "unknown payment method")
	}

	if input.PaymentMethod == model.PaymentMethodMpesa {
		phone := strings.TrimSpace(input.ShippingAddress.Phone)
		if phone == "" {
			add("shippingAddress.phone", "mobile number is required for mpesa payments")
		} else if !phonePattern.MatchString(phone) {
			add("shippingAddress.phone", "mobile number is invalid")
		}
	}

	return fields
}

func validateAddress(addr model.Address, path string, add func(path, msg string)) {
	if strings.TrimSpace(addr.FullName) == "" {
		add(path+".fullName", "full name is required")
	}
	if strings.TrimSpace(addr.Street) == "" {
		add(path+".street", "street is required")
	}
	if strings.TrimSpace(addr.City) == "" {
		add(path+".city", "city is required")
	}
	if strings.TrimSpace(addr.Country) == "" {
		add(path+".country", "country is required")
	}
}
