package phone

import "strings"

// Rule turns cleaned digits into the canonical form for one country.
// Canonicalize returns ErrInvalidFormat or ErrInvalidLength on failure.
type Rule interface {
	CallingCode() string
	Country() string
	Canonicalize(digits string) (string, error)
}

// TrunkRule covers dialing plans with a domestic trunk "0", a fixed
// subscriber length and an optional bare mobile prefix.
type TrunkRule struct {
	Name             string
	Code             string
	MobilePrefix     string
	SubscriberDigits int
	// DropZeroAfterCode removes a "0" that directly follows the calling
	// code, whatever the resulting length.
	DropZeroAfterCode bool
}

// UAE is the rule for +971 numbers.
var UAE = TrunkRule{
	Name:              "UAE",
	Code:              "971",
	MobilePrefix:      "5",
	SubscriberDigits:  9,
	DropZeroAfterCode: true,
}

// CallingCode returns the international calling code without "+".
func (r TrunkRule) CallingCode() string {
	return r.Code
}

// Country returns the display name used in error messages.
func (r TrunkRule) Country() string {
	return r.Name
}

// CanonicalLength is the length of a canonical number including "+".
func (r TrunkRule) CanonicalLength() int {
	return 1 + len(r.Code) + r.SubscriberDigits
}

// Canonicalize implements Rule.
func (r TrunkRule) Canonicalize(digits string) (string, error) {
	var formatted string

	switch {
	case strings.HasPrefix(digits, r.Code):
		rest := digits[len(r.Code):]
		if r.DropZeroAfterCode && strings.HasPrefix(rest, "0") {
			rest = rest[1:]
		}

		formatted = "+" + r.Code + rest
	case strings.HasPrefix(digits, "0"):
		formatted = "+" + r.Code + digits[1:]
	case r.MobilePrefix != "" && strings.HasPrefix(digits, r.MobilePrefix):
		formatted = "+" + r.Code + digits
	default:
		return "", ErrInvalidFormat
	}

	if len(formatted) != r.CanonicalLength() {
		return "", ErrInvalidLength
	}

	return formatted, nil
}
