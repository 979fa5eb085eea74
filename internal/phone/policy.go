package phone

import (
	"regexp"
	"strings"
)

var (
	cosmeticPattern = regexp.MustCompile(`[\s()]+`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// CleanupStep is one named rewrite applied to a raw phone value.
type CleanupStep struct {
	Name  string
	Apply func(string) string
}

// Policy is an ordered list of cleanup steps. Steps run in slice order.
type Policy struct {
	Steps []CleanupStep
}

// DefaultPolicy strips formatting, keeps digits only and drops the "00"
// international dialing prefix.
func DefaultPolicy() Policy {
	return Policy{
		Steps: []CleanupStep{
			{Name: "cosmetic", Apply: stripCosmetic},
			{Name: "digits", Apply: digitsOnly},
			{Name: "international-prefix", Apply: dropInternationalPrefix},
		},
	}
}

// Clean runs every step in order.
func (p Policy) Clean(raw string) string {
	out := raw
	for _, step := range p.Steps {
		out = step.Apply(out)
	}

	return out
}

func stripCosmetic(s string) string {
	return cosmeticPattern.ReplaceAllString(s, "")
}

func digitsOnly(s string) string {
	return nonDigitPattern.ReplaceAllString(s, "")
}

func dropInternationalPrefix(s string) string {
	return strings.TrimPrefix(s, "00")
}
