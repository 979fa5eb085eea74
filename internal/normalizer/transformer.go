package normalizer

import (
	"fmt"

	"phonestd/internal/logger"
	"phonestd/internal/models"
	"phonestd/internal/phone"

	"golang.org/x/sync/errgroup"
)

// Transformer standardizes the phone field of each record.
type Transformer struct {
	normalizer *phone.Normalizer
	workers    int
	log        *logger.Logger
}

// NewTransformer creates a transformer. workers below 2 means sequential.
func NewTransformer(n *phone.Normalizer, workers int, log *logger.Logger) *Transformer {
	if log == nil {
		log = logger.NewNop()
	}

	return &Transformer{
		normalizer: n,
		workers:    workers,
		log:        log,
	}
}

type outcome struct {
	corrected bool
	err       *ValidationError
}

// Transform rewrites phone fields in place and returns the per-record
// errors in input order along with the number of corrected records.
func (t *Transformer) Transform(records []models.Record) ([]ValidationError, int) {
	outcomes := make([]outcome, len(records))

	if t.workers > 1 && len(records) > 1 {
		var g errgroup.Group

		g.SetLimit(t.workers)

		for i := range records {
			i := i

			g.Go(func() error {
				outcomes[i] = t.standardize(i, &records[i])
				return nil
			})
		}

		_ = g.Wait()
	} else {
		for i := range records {
			outcomes[i] = t.standardize(i, &records[i])
		}
	}

	var errs []ValidationError

	corrected := 0

	for _, o := range outcomes {
		if o.err != nil {
			errs = append(errs, *o.err)
		}

		if o.corrected {
			corrected++
		}
	}

	return errs, corrected
}

func (t *Transformer) standardize(index int, rec *models.Record) outcome {
	if !rec.HasPhone() {
		return outcome{}
	}

	name := recordLabel(index, rec)

	original, ok := rec.Phone()
	if !ok {
		err := &phone.NumberError{
			Kind:    phone.ErrInvalidFormat,
			Country: t.normalizer.Rule().Country(),
			Raw:     rec.RawPhone(),
		}

		return t.fail(name, rec.RawPhone(), err)
	}

	canonical, err := t.normalizer.Normalize(original)
	if err != nil {
		return t.fail(name, original, err)
	}

	if canonical == original {
		return outcome{}
	}

	rec.SetPhone(canonical)
	t.log.Debug("phone standardized", "record", name, "from", original, "to", canonical)

	return outcome{corrected: true}
}

func (t *Transformer) fail(name, rawPhone string, err error) outcome {
	ve := newValidationError(name, rawPhone, err)
	t.log.Debug("phone rejected", "record", name, "reason", ve.Reason)

	return outcome{err: &ve}
}

// recordLabel names a record in error messages, falling back to its
// position when it has no name.
func recordLabel(index int, rec *models.Record) string {
	if name := rec.Name(); name != "" {
		return name
	}

	return fmt.Sprintf("record[%d]", index)
}
