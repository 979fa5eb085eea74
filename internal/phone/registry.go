package phone

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/nyaruka/phonenumbers"
)

// Registry maps calling codes to normalization rules.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// DefaultRegistry returns a registry holding every implemented rule.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(UAE)

	return r
}

// Register adds rule under its calling code.
func (r *Registry) Register(rule Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	code := rule.CallingCode()
	if _, ok := r.rules[code]; ok {
		return fmt.Errorf("%w: +%s", ErrDuplicateRule, code)
	}

	r.rules[code] = rule

	return nil
}

// Lookup returns the rule registered for code.
func (r *Registry) Lookup(code string) (Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.rules[code]
	if !ok {
		return nil, fmt.Errorf("%w: +%s", ErrUnsupportedCountry, code)
	}

	return rule, nil
}

// Normalizer builds a normalizer for the rule registered under code.
func (r *Registry) Normalizer(code string) (*Normalizer, error) {
	rule, err := r.Lookup(code)
	if err != nil {
		return nil, err
	}

	return NewNormalizer(rule), nil
}

// Codes returns the registered calling codes, sorted.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.rules))
	for code := range r.rules {
		codes = append(codes, code)
	}

	sort.Strings(codes)

	return codes
}

// Country is one entry of the country selector.
type Country struct {
	Label       string
	CallingCode string
	Region      string
	Supported   bool
}

var selector = []struct {
	label string
	code  int
}{
	{"UAE", 971},
	{"Saudi Arabia", 966},
	{"Kuwait", 965},
	{"Bahrain", 973},
	{"Qatar", 974},
	{"Oman", 968},
}

// Catalog lists the selectable countries and whether r can normalize them.
func (r *Registry) Catalog() []Country {
	out := make([]Country, 0, len(selector))

	for _, entry := range selector {
		code := strconv.Itoa(entry.code)
		_, err := r.Lookup(code)

		out = append(out, Country{
			Label:       entry.label,
			CallingCode: code,
			Region:      phonenumbers.GetRegionCodeForCountryCode(entry.code),
			Supported:   err == nil,
		})
	}

	return out
}

// KnownCallingCode reports whether code is an assigned ITU calling code.
func KnownCallingCode(code string) bool {
	n, err := strconv.Atoi(code)
	if err != nil || n <= 0 || strconv.Itoa(n) != code {
		return false
	}

	return phonenumbers.GetRegionCodeForCountryCode(n) != "ZZ"
}

// String formats a country the way the selector shows it, e.g. "UAE (+971)".
func (c Country) String() string {
	return fmt.Sprintf("%s (+%s)", c.Label, c.CallingCode)
}
