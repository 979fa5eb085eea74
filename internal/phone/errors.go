package phone

import (
	"errors"
	"fmt"
)

// Number errors.
var (
	ErrInvalidFormat      = errors.New("invalid number format")
	ErrInvalidLength      = errors.New("invalid number length")
	ErrUnsupportedCountry = errors.New("unsupported country")
	ErrDuplicateRule      = errors.New("rule already registered")
)

// NumberError reports why a raw phone value could not be normalized.
// Raw is the caller's input exactly as given, before any cleanup.
type NumberError struct {
	Kind    error
	Country string
	Raw     string
}

func (e *NumberError) Error() string {
	if errors.Is(e.Kind, ErrInvalidLength) {
		return fmt.Sprintf("Invalid number length: %s", e.Raw)
	}

	return fmt.Sprintf("Invalid %s number format: %s", e.Country, e.Raw)
}

func (e *NumberError) Unwrap() error {
	return e.Kind
}
