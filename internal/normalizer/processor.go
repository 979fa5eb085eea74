// Package normalizer runs a batch of records through phone normalization
// and reports what changed.
package normalizer

import (
	"errors"
	"fmt"

	"phonestd/internal/logger"
	"phonestd/internal/models"
	"phonestd/internal/phone"
)

// Processor handles document validation and phone standardization.
type Processor struct {
	validator   *Validator
	transformer *Transformer
	log         *logger.Logger
}

type options struct {
	normalizer *phone.Normalizer
	workers    int
	log        *logger.Logger
}

// Option configures a Processor.
type Option func(*options)

// WithNormalizer selects the country normalizer. The default is UAE.
func WithNormalizer(n *phone.Normalizer) Option {
	return func(o *options) { o.normalizer = n }
}

// WithWorkers normalizes records on up to n goroutines.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger used for per-record and batch messages.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// NewProcessor creates a new processor instance.
func NewProcessor(opts ...Option) *Processor {
	o := options{
		normalizer: phone.NewNormalizer(phone.UAE),
		workers:    1,
		log:        logger.NewNop(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(o.normalizer, o.workers, o.log),
		log:         o.log,
	}
}

// Process standardizes every phone in doc. doc is left untouched; the
// result carries a separate output document.
func (p *Processor) Process(doc *models.Document) (*BatchResult, error) {
	// 1. Validate the input document
	records, err := p.validator.Validate(doc)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// 2. Standardize phone numbers
	errs, corrected := p.transformer.Transform(records)

	// 3. Assemble the output document
	out := doc.Clone()
	if err := out.SetPeople(records); err != nil {
		return nil, fmt.Errorf("failed to build output document: %w", err)
	}

	result := &BatchResult{
		Output:           out,
		Errors:           errs,
		Modified:         corrected > 0,
		TotalRecords:     len(records),
		CorrectedRecords: corrected,
	}

	p.log.Info("batch processed",
		"total", result.TotalRecords,
		"corrected", result.CorrectedRecords,
		"errors", len(result.Errors),
	)

	return result, nil
}

// ProcessBytes decodes data and processes it. Invalid JSON fails with
// models.ErrMalformedInput; a non-object document with ErrMalformedDocument.
func (p *Processor) ProcessBytes(data []byte) (*BatchResult, error) {
	doc, err := models.Decode(data)
	if errors.Is(err, models.ErrNotObject) {
		return nil, fmt.Errorf("validation failed: %w: %w", ErrMalformedDocument, err)
	}

	if err != nil {
		return nil, err
	}

	return p.Process(doc)
}
