package document_test

import (
	"encoding/csv"
	"strconv"
	"strings"
	"testing"

	"github.com/robertof/go-factory-demos/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVReader_FirstRowOnly(t *testing.T) {
	path := writeDocument(t, "data.csv", "name,age\nAlice,30\nBob,41\nCarol,52\n")

	got, err := document.CSVReader{}.ReadRecord(path)

	require.NoError(t, err)
	assert.Equal(t, document.Record{Name: "Alice", Age: 30}, got)
}

func TestCSVReader_IgnoresBrokenRowsAfterFirst(t *testing.T) {
	got, err := document.CSVReader{}.Decode(strings.NewReader("name,age\nAlice,30\nBob\n\"unterminated\n"))

	require.NoError(t, err)
	assert.Equal(t, document.Record{Name: "Alice", Age: 30}, got)
}

func TestCSVReader_MapsColumnsByHeader(t *testing.T) {
	got, err := document.CSVReader{}.Decode(strings.NewReader("city,age,name\nRome,27,Dario\n"))

	require.NoError(t, err)
	assert.Equal(t, document.Record{Name: "Dario", Age: 27}, got)
}

func TestCSVReader_HeaderOnly(t *testing.T) {
	path := writeDocument(t, "data.csv", "name,age\n")

	_, err := document.CSVReader{}.ReadRecord(path)

	assert.ErrorIs(t, err, document.ErrRecordNotFound)
	assert.Contains(t, err.Error(), "record not found")
}

func TestCSVReader_Empty(t *testing.T) {
	_, err := document.CSVReader{}.Decode(strings.NewReader(""))

	assert.ErrorIs(t, err, document.ErrRecordNotFound)
}

func TestCSVReader_Invalid(t *testing.T) {
	for _, doc := range []string{
		"name,years\nAlice,30\n",
		"name,age\nAlice,thirty\n",
		"name,age\nAlice,-1\n",
		"name,age\nAlice,65536\n",
		"name,age\nAlice\n",
	} {
		_, err := document.CSVReader{}.Decode(strings.NewReader(doc))

		assert.ErrorIs(t, err, document.ErrInvalidRecord, "document %q", doc)
	}
}

func TestCSVReader_MissingFile(t *testing.T) {
	_, err := document.CSVReader{}.ReadRecord(t.TempDir() + "/missing.csv")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, document.ErrRecordNotFound)
}

func TestCSVReader_StripsByteOrderMark(t *testing.T) {
	path := writeDocument(t, "bom.csv", "\ufeffname,age\nAlice,30\n")

	got, err := document.CSVReader{}.ReadRecord(path)

	require.NoError(t, err)
	assert.Equal(t, document.Record{Name: "Alice", Age: 30}, got)
}

func TestCSVReader_KeepsErrorCause(t *testing.T) {
	_, err := document.CSVReader{}.Decode(strings.NewReader("name,age\nAlice\n"))

	require.ErrorIs(t, err, document.ErrInvalidRecord)

	var parseErr *csv.ParseError
	assert.ErrorAs(t, err, &parseErr)

	_, err = document.CSVReader{}.Decode(strings.NewReader("name,age\nAlice,thirty\n"))

	require.ErrorIs(t, err, document.ErrInvalidRecord)

	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr)
}
