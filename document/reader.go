package document

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrInvalidRecord  = errors.New("invalid record")
	ErrUnknownType    = errors.New("unknown document type")
)

// Reader reads the single record stored in a named source. Readers are stateless and
// can be reused across calls.
type Reader interface {
	ReadRecord(source string) (Record, error)
}

// NewReader returns the Reader handling documents of type t.
func NewReader(t Type) (Reader, error) {
	switch t {
	case TypeJSON:
		return JSONReader{}, nil
	case TypeCSV:
		return CSVReader{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownType, t)
	}
}

type decodeFunc func(r io.Reader) (Record, error)

func readFile(source string, t Type, decode decodeFunc) (rec Record, err error) {
	defer func() {
		readsCounter.WithLabelValues(t.String(), resultLabel(err)).Inc()
	}()

	f, err := os.Open(source)
	if err != nil {
		return rec, fmt.Errorf("failed to open %s document: %w", t, err)
	}

	defer f.Close()

	rec, err = decode(f)
	if err != nil {
		return rec, fmt.Errorf("%s: %w", source, err)
	}

	log.Debug().
		Str("Source", source).
		Stringer("Type", t).
		Stringer("Record", rec).
		Msg("Read record from document")

	return rec, nil
}

// Editor binds a document source to the reader able to parse it.
type Editor struct {
	Source string
	Reader Reader
}

func NewEditor(source string, t Type) (*Editor, error) {
	r, err := NewReader(t)
	if err != nil {
		return nil, err
	}

	return &Editor{Source: source, Reader: r}, nil
}

func (e *Editor) Read() (Record, error) {
	return e.Reader.ReadRecord(e.Source)
}
