package form

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	maxPhoneDigits    = 10
	orderNumberLength = 9
)

var (
	ErrIncompleteForm = errors.New("form has empty or malformed fields")
	ErrRejectedInput  = errors.New("input rejected")
)

var (
	validate  = validator.New(validator.WithRequiredStructEnabled())
	digitsRe  = regexp.MustCompile(`^\d*$`)
	costRe    = regexp.MustCompile(`^\d*\.?\d*$`)
	base36Pad = strings.Repeat("0", orderNumberLength)
)

// acceptPhone reports whether raw may be typed into a phone field.
func acceptPhone(raw string) bool {
	return len(raw) <= maxPhoneDigits && digitsRe.MatchString(raw)
}

// acceptCost reports whether raw may be typed into the cost field: empty or a
// non-negative decimal.
func acceptCost(raw string) bool {
	return raw == "" || (raw != "." && costRe.MatchString(raw))
}

// newOrderNumber returns a 9 character base-36 token.
func newOrderNumber() string {
	id := uuid.New()
	s := new(big.Int).SetBytes(id[:]).Text(36)
	s = base36Pad + s
	return s[len(s)-orderNumberLength:]
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrIncompleteForm, err)
	}
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		names = append(names, fe.Field())
	}
	return fmt.Errorf("%w: %s", ErrIncompleteForm, strings.Join(names, ", "))
}
