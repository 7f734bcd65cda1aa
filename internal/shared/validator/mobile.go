package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// mobileRegex matches local mobile numbers as stored by the legacy
	// system: 0912-345-6789, 09123456789, or the +98 international form.
	mobileRegex = regexp.MustCompile(`^(\+?98|0)?9[0-9]{2}-?[0-9]{3}-?[0-9]{4}$`)
)

// ValidateMobile validates a mobile phone number
// This is a common validator used across multiple domains
func ValidateMobile(fl validator.FieldLevel) bool {
	mobile := fl.Field().String()
	return mobileRegex.MatchString(mobile)
}
