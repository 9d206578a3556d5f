package order

import (
	"fmt"
	"math/rand/v2"
	"regexp"

	"printshop/internal/pkg/errs"
)

// codePattern is the format of the human-facing order code shown to students.
var codePattern = regexp.MustCompile(`^O\d{4}$`)

// NewRandomCode samples a candidate order code in the "O####" format.
// Codes are not unique by construction; callers must collision-check against
// the repository and resample until unique.
func NewRandomCode() string {
	return fmt.Sprintf("O%04d", rand.IntN(10000)) //nolint:gosec // codes are not secrets
}

// ValidateCode checks the "O####" format of a human-facing order code.
func ValidateCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	if !codePattern.MatchString(code) {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderId", fmt.Errorf("%q does not match O####", code))
	}
	return nil
}
