// Package phone normalizes raw phone strings into canonical
// "+<calling code><subscriber>" form.
package phone

// Normalizer applies a cleanup policy and then a country rule.
// It holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	policy Policy
	rule   Rule
}

// NewNormalizer creates a normalizer for the given rule using DefaultPolicy.
func NewNormalizer(rule Rule) *Normalizer {
	return &Normalizer{
		policy: DefaultPolicy(),
		rule:   rule,
	}
}

// NewNormalizerWithPolicy creates a normalizer with a custom cleanup policy.
func NewNormalizerWithPolicy(rule Rule, policy Policy) *Normalizer {
	return &Normalizer{
		policy: policy,
		rule:   rule,
	}
}

// Rule returns the country rule in use.
func (n *Normalizer) Rule() Rule {
	return n.rule
}

// Normalize returns the canonical form of raw. Failures are *NumberError
// values quoting raw verbatim.
func (n *Normalizer) Normalize(raw string) (string, error) {
	canonical, err := n.rule.Canonicalize(n.policy.Clean(raw))
	if err != nil {
		return "", &NumberError{
			Kind:    err,
			Country: n.rule.Country(),
			Raw:     raw,
		}
	}

	return canonical, nil
}

var defaultNormalizer = NewNormalizer(UAE)

// Normalize normalizes raw with the UAE rule.
func Normalize(raw string) (string, error) {
	return defaultNormalizer.Normalize(raw)
}
