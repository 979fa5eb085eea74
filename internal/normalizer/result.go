package normalizer

import (
	"fmt"

	"phonestd/internal/models"
)

// ValidationError describes one record whose phone could not be normalized.
// Phone is the record's value as it appeared in the input.
type ValidationError struct {
	RecordName string
	Phone      string
	Reason     string
	Err        error
}

func newValidationError(name, rawPhone string, err error) ValidationError {
	return ValidationError{RecordName: name, Phone: rawPhone, Reason: err.Error(), Err: err}
}

// Message renders the error the way it appears in the log.
func (e ValidationError) Message() string {
	return fmt.Sprintf("Error for %s: %s", e.RecordName, e.Reason)
}

func (e ValidationError) Error() string {
	return e.Message()
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// BatchResult is the outcome of processing one document.
type BatchResult struct {
	Output           *models.Document
	Errors           []ValidationError
	Modified         bool
	TotalRecords     int
	CorrectedRecords int
}

// Messages returns every error message in record order.
func (r *BatchResult) Messages() []string {
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, e.Message())
	}

	return out
}

// HasErrors reports whether any record failed.
func (r *BatchResult) HasErrors() bool {
	return len(r.Errors) > 0
}
