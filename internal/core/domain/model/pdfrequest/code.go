package pdfrequest

import (
	"fmt"
	"math/rand/v2"
	"regexp"

	"printshop/internal/pkg/errs"
)

// codePattern is the format of the human-facing request code shown to students.
var codePattern = regexp.MustCompile(`^REQ\d{4}$`)

// NewRandomCode samples a candidate request code in the "REQ####" format.
// Codes are not unique by construction; callers must collision-check against
// the repository and resample until unique.
func NewRandomCode() string {
	return fmt.Sprintf("REQ%04d", rand.IntN(10000)) //nolint:gosec // codes are not secrets
}

// ValidateCode checks the "REQ####" format of a human-facing request code.
func ValidateCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("requestId")
	}
	if !codePattern.MatchString(code) {
		return errs.NewValueIsInvalidErrorWithCause(
			"requestId", fmt.Errorf("%q does not match REQ####", code))
	}
	return nil
}
