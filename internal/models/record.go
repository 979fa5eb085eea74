package models

import (
	"bytes"
	"encoding/json"
)

// Record field names.
const (
	NameKey  = "name"
	PhoneKey = "phone"
)

// Record is one entry of a document's people array.
type Record struct {
	fields []Field
}

// NewRecord builds a record from name and phone. An empty phone is omitted.
func NewRecord(name, phone string) Record {
	var r Record

	r.Set(NameKey, mustString(name))

	if phone != "" {
		r.SetPhone(phone)
	}

	return r
}

// DecodeRecord parses a JSON object into a record.
func DecodeRecord(raw json.RawMessage) (Record, error) {
	fields, err := decodeFields(raw)
	if err != nil {
		return Record{}, err
	}

	return Record{fields: fields}, nil
}

// Get returns the raw value stored under key.
func (r *Record) Get(key string) (json.RawMessage, bool) {
	i := lookup(r.fields, key)
	if i < 0 {
		return nil, false
	}

	return r.fields[i].Value, true
}

// Set stores value under key, keeping the key's position when it exists.
func (r *Record) Set(key string, value json.RawMessage) {
	if i := lookup(r.fields, key); i >= 0 {
		r.fields[i].Value = value
		return
	}

	r.fields = append(r.fields, Field{Key: key, Value: value})
}

// Fields returns a copy of the record's fields in document order.
func (r *Record) Fields() []Field {
	return cloneFields(r.fields)
}

// Name returns the name field, or "" when it is missing or not a string.
func (r *Record) Name() string {
	raw, ok := r.Get(NameKey)
	if !ok {
		return ""
	}

	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return ""
	}

	return name
}

// HasPhone reports whether the record carries a non-null phone field.
func (r *Record) HasPhone() bool {
	raw, ok := r.Get(PhoneKey)
	return ok && !IsNull(raw)
}

// Phone returns the phone field when it is a JSON string.
func (r *Record) Phone() (string, bool) {
	raw, ok := r.Get(PhoneKey)
	if !ok {
		return "", false
	}

	var phone string
	if err := json.Unmarshal(raw, &phone); err != nil {
		return "", false
	}

	return phone, true
}

// RawPhone returns the phone field's JSON text.
func (r *Record) RawPhone() string {
	raw, _ := r.Get(PhoneKey)
	return string(bytes.TrimSpace(raw))
}

// SetPhone replaces the phone field with a JSON string.
func (r *Record) SetPhone(phone string) {
	r.Set(PhoneKey, mustString(phone))
}

// Clone returns a deep copy.
func (r Record) Clone() Record {
	return Record{fields: cloneFields(r.fields)}
}

// MarshalJSON implements json.Marshaler.
func (r Record) MarshalJSON() ([]byte, error) {
	return encodeFields(r.fields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Record) UnmarshalJSON(data []byte) error {
	fields, err := decodeFields(data)
	if err != nil {
		return err
	}

	r.fields = fields

	return nil
}

func mustString(s string) json.RawMessage {
	b, err := encodeString(s)
	if err != nil {
		// strings always encode
		panic(err)
	}

	return b
}
