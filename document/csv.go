package document

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	columnName = "name"
	columnAge  = "age"

	utf8BOM = "\ufeff"
)

// CSVReader maps columns by header and returns the first data row. Any following row
// is never read.
type CSVReader struct{}

func (c CSVReader) ReadRecord(source string) (Record, error) {
	return readFile(source, TypeCSV, c.Decode)
}

func (c CSVReader) Decode(r io.Reader) (rec Record, err error) {
	rdr := csv.NewReader(r)

	header, err := rdr.Read()
	if err == io.EOF {
		return rec, ErrRecordNotFound
	} else if err != nil {
		return rec, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	nameIdx, ageIdx := -1, -1

	for i, column := range header {
		switch column {
		case columnName:
			nameIdx = i
		case columnAge:
			ageIdx = i
		}
	}

	if nameIdx < 0 || ageIdx < 0 {
		return rec, errors.Wrapf(ErrInvalidRecord, "header %q must contain %q and %q",
			header, columnName, columnAge)
	}

	row, err := rdr.Read()
	if err == io.EOF {
		return rec, ErrRecordNotFound
	} else if err != nil {
		return rec, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	age, err := strconv.ParseUint(row[ageIdx], 10, 16)
	if err != nil {
		return rec, fmt.Errorf("%w: invalid %s: %w", ErrInvalidRecord, columnAge, err)
	}

	rec.Name = row[nameIdx]
	rec.Age = uint16(age)

	return rec, nil
}
