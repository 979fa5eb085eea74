package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// PeopleKey is the top-level field holding the records.
const PeopleKey = "people"

// Document is a parsed input file: a JSON object whose "people" field holds
// the records. Other top-level fields are carried through unchanged.
type Document struct {
	fields []Field
}

// NewDocument builds a document holding only the given records.
func NewDocument(records ...Record) *Document {
	d := &Document{}
	if err := d.SetPeople(records); err != nil {
		panic(err)
	}

	return d
}

// Decode parses raw bytes into a document. Bytes that are not valid JSON
// fail with ErrMalformedInput; valid JSON that is not an object fails with
// ErrNotObject.
func Decode(data []byte) (*Document, error) {
	if !json.Valid(data) {
		var probe any

		err := json.Unmarshal(data, &probe)

		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	fields, err := decodeFields(data)
	if errors.Is(err, ErrNotObject) {
		return nil, err
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	return &Document{fields: fields}, nil
}

// Get returns the raw value stored under key.
func (d *Document) Get(key string) (json.RawMessage, bool) {
	i := lookup(d.fields, key)
	if i < 0 {
		return nil, false
	}

	return d.fields[i].Value, true
}

// Set stores value under key, keeping the key's position when it exists.
func (d *Document) Set(key string, value json.RawMessage) {
	if i := lookup(d.fields, key); i >= 0 {
		d.fields[i].Value = value
		return
	}

	d.fields = append(d.fields, Field{Key: key, Value: value})
}

// Fields returns a copy of the top-level fields in document order.
func (d *Document) Fields() []Field {
	return cloneFields(d.fields)
}

// People decodes the people array. It fails when the field is missing,
// is not an array, or holds a non-object entry.
func (d *Document) People() ([]Record, error) {
	raw, ok := d.Get(PeopleKey)
	if !ok {
		return nil, fmt.Errorf("missing %q field", PeopleKey)
	}

	items, err := DecodeArray(raw)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", PeopleKey, err)
	}

	records := make([]Record, 0, len(items))

	for i, item := range items {
		rec, err := DecodeRecord(item)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", PeopleKey, i, err)
		}

		records = append(records, rec)
	}

	return records, nil
}

// SetPeople replaces the people array.
func (d *Document) SetPeople(records []Record) error {
	var buf bytes.Buffer

	buf.WriteByte('[')

	for i, rec := range records {
		if i > 0 {
			buf.WriteByte(',')
		}

		b, err := rec.MarshalJSON()
		if err != nil {
			return err
		}

		buf.Write(b)
	}

	buf.WriteByte(']')
	d.Set(PeopleKey, buf.Bytes())

	return nil
}

// Clone returns a deep copy sharing no memory with d.
func (d *Document) Clone() *Document {
	return &Document{fields: cloneFields(d.fields)}
}

// MarshalJSON implements json.Marshaler.
func (d *Document) MarshalJSON() ([]byte, error) {
	return encodeFields(d.fields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Document) UnmarshalJSON(data []byte) error {
	fields, err := decodeFields(data)
	if err != nil {
		return err
	}

	d.fields = fields

	return nil
}

// Encode serializes d without HTML escaping. With indent set, output is
// indented by that string per level.
func Encode(d *Document, indent string) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if indent != "" {
		enc.SetIndent("", indent)
	}

	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	return buf.Bytes(), nil
}
