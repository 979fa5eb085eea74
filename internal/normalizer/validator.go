package normalizer

import (
	"errors"
	"fmt"

	"phonestd/internal/models"
)

// ErrMalformedDocument is returned when a document does not hold a usable
// people array. It aborts the batch.
var ErrMalformedDocument = errors.New("malformed document")

// Validator checks the shape of an input document.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks that doc holds a people array of objects and returns the
// decoded records. The records are fresh copies owned by the caller.
func (v *Validator) Validate(doc *models.Document) ([]models.Record, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: document is nil", ErrMalformedDocument)
	}

	records, err := doc.People()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	return records, nil
}
