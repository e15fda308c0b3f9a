package document

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

type Type uint8

const (
	TypeJSON Type = iota
	TypeCSV
)

// Types lists every supported document type.
var Types = []Type{TypeJSON, TypeCSV}

func ParseType(v string) (Type, error) {
	switch strings.ToLower(strings.TrimPrefix(v, ".")) {
	case "json":
		return TypeJSON, nil
	case "csv":
		return TypeCSV, nil
	default:
		return 0, fmt.Errorf("%w: %q (must be one of %v)", ErrUnknownType, v, Types)
	}
}

// TypeFromPath guesses the document type from the file extension.
func TypeFromPath(path string) (Type, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("%w: %q has no extension", ErrUnknownType, path)
	}

	return ParseType(ext)
}

func (t Type) String() string {
	switch t {
	case TypeJSON:
		return "json"
	case TypeCSV:
		return "csv"
	default:
		return "unknown(" + strconv.Itoa(int(t)) + ")"
	}
}

// *flag.Value
func (t *Type) Set(v string) error {
	parsed, err := ParseType(v)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
