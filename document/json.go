package document

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const (
	fieldName = "name"
	fieldAge  = "age"
)

// JSONReader parses the whole source as exactly one record object. Field names are
// matched exactly, duplicated fields are rejected and unknown fields are skipped.
type JSONReader struct{}

func (j JSONReader) ReadRecord(source string) (Record, error) {
	return readFile(source, TypeJSON, j.Decode)
}

func (j JSONReader) Decode(r io.Reader) (rec Record, err error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err == io.EOF {
		return rec, errors.Wrap(ErrInvalidRecord, "empty document")
	} else if err != nil {
		return rec, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return rec, errors.Wrapf(ErrInvalidRecord, "expected an object, got %v", tok)
	}

	seen := make(map[string]bool, 2)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return rec, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}

		key, ok := tok.(string)
		if !ok {
			return rec, errors.Wrapf(ErrInvalidRecord, "unexpected token %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return rec, fmt.Errorf("%w: field `%s`: %w", ErrInvalidRecord, key, err)
		}

		var dst any

		switch key {
		case fieldName:
			dst = &rec.Name
		case fieldAge:
			dst = &rec.Age
		default:
			continue
		}

		if seen[key] {
			return rec, errors.Wrapf(ErrInvalidRecord, "duplicate field `%s`", key)
		}

		seen[key] = true

		if string(raw) == "null" {
			return rec, errors.Wrapf(ErrInvalidRecord, "field `%s` is null", key)
		}

		if err := json.Unmarshal(raw, dst); err != nil {
			return rec, fmt.Errorf("%w: field `%s`: %w", ErrInvalidRecord, key, err)
		}
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return rec, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	if _, err := dec.Token(); err != io.EOF {
		return rec, errors.Wrap(ErrInvalidRecord, "trailing data after record")
	}

	for _, field := range []string{fieldName, fieldAge} {
		if !seen[field] {
			return rec, errors.Wrapf(ErrInvalidRecord, "missing field `%s`", field)
		}
	}

	return rec, nil
}
