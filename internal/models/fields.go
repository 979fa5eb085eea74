// Package models defines the JSON document and record types processed by
// the normalizer. Objects keep their key order and the raw bytes of every
// value so untouched fields round-trip unchanged.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Decoding errors.
var (
	ErrMalformedInput = errors.New("malformed input")
	ErrNotObject      = errors.New("value is not a JSON object")
	ErrNotArray       = errors.New("value is not a JSON array")
)

// Field is one key of a JSON object with its undecoded value.
type Field struct {
	Key   string
	Value json.RawMessage
}

func decodeFields(data []byte) ([]Field, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotObject
	}

	fields := []Field{}

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}

		fields = append(fields, Field{Key: key, Value: raw})
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}

	return fields, nil
}

func encodeFields(fields []Field) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := encodeString(f.Key)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')

		if len(f.Value) == 0 {
			buf.WriteString("null")
		} else {
			buf.Write(f.Value)
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// encodeString quotes s without HTML escaping.
func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(s); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func cloneFields(fields []Field) []Field {
	if fields == nil {
		return nil
	}

	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = Field{Key: f.Key, Value: bytes.Clone(f.Value)}
	}

	return out
}

// lookup returns the index of the last field named key, or -1.
func lookup(fields []Field, key string) int {
	for i := len(fields) - 1; i >= 0; i-- {
		if fields[i].Key == key {
			return i
		}
	}

	return -1
}

// IsNull reports whether raw is empty or the JSON literal null.
func IsNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// DecodeArray splits a JSON array into its raw elements.
func DecodeArray(raw json.RawMessage) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, err
	}

	return items, nil
}
