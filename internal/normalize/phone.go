package normalize

import (
	"fmt"
	"regexp"
	"strings"
)

var nonDigit = regexp.MustCompile(`\D`)

// Phone is the outcome of phone normalization. An absent input yields the
// zero value; a present input whose digit count is not a valid US shape
// sets Invalid instead. The two cases are distinct: absent means nothing
// was there, Invalid means something was there that could not be normalized.
type Phone struct {
	Value   *string
	Invalid bool
}

// Absent reports whether the input carried no phone number at all.
func (p Phone) Absent() bool {
	return p.Value == nil && !p.Invalid
}

// NormalizePhone strips every non-digit character and formats the remaining
// digits as a US display number: (XXX) XXX-XXXX for 10 digits, or
// 1-XXX-XXX-XXXX for 11 digits with a leading "1" country code.
// Any other digit count is marked invalid.
func NormalizePhone(v *string) Phone {
	if v == nil {
		return Phone{}
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return Phone{}
	}

	digits := nonDigit.ReplaceAllString(s, "")

	switch {
	case len(digits) == 11 && digits[0] == '1':
		f := fmt.Sprintf("1-%s-%s-%s", digits[1:4], digits[4:7], digits[7:])
		return Phone{Value: &f}
	case len(digits) == 10:
		f := fmt.Sprintf("(%s) %s-%s", digits[0:3], digits[3:6], digits[6:])
		return Phone{Value: &f}
	default:
		return Phone{Invalid: true}
	}
}
