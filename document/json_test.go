package document_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/robertof/go-factory-demos/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONReader_ReadRecord(t *testing.T) {
	path := writeDocument(t, "data.json", `{"name":"Alice","age":30}`)

	got, err := document.JSONReader{}.ReadRecord(path)

	require.NoError(t, err)
	assert.Equal(t, document.Record{Name: "Alice", Age: 30}, got)
}

func TestJSONReader_IgnoresUnknownFields(t *testing.T) {
	got, err := document.JSONReader{}.Decode(strings.NewReader(`{"age": 7, "name": "Eve", "city": "Oslo"}` + "\n"))

	require.NoError(t, err)
	assert.Equal(t, document.Record{Name: "Eve", Age: 7}, got)
}

func TestJSONReader_Invalid(t *testing.T) {
	for _, doc := range []string{
		``,
		`null`,
		`[{"name":"Alice","age":30}]`,
		`{"name":"Alice"}`,
		`{"age":30}`,
		`{"name":"Alice","age":"30"}`,
		`{"name":"Alice","age":-1}`,
		`{"name":"Alice","age":30.5}`,
		`{"name":"Alice","age":70000}`,
		`{"name":"Alice","age":30}{"name":"Bob","age":41}`,
		`{"name":"Alice","age":30`,
		`{"NAME":"Alice","Age":30}`,
		`{"name":"Alice","age":30,"name":"Bob"}`,
		`{"name":"Alice","age":30,"age":41}`,
		`{"name":null,"age":30}`,
		`{"name":"Alice","age":null}`,
		`"Alice"`,
	} {
		_, err := document.JSONReader{}.Decode(strings.NewReader(doc))

		assert.ErrorIs(t, err, document.ErrInvalidRecord, "document %q", doc)
	}
}

func TestJSONReader_SkipsUnknownNestedFields(t *testing.T) {
	got, err := document.JSONReader{}.Decode(strings.NewReader(
		`{"tags":["a",{"name":"Bob"}],"name":"Alice","meta":{"age":99},"age":30}`))

	require.NoError(t, err)
	assert.Equal(t, document.Record{Name: "Alice", Age: 30}, got)
}

func TestJSONReader_KeepsSyntaxErrorCause(t *testing.T) {
	_, err := document.JSONReader{}.Decode(strings.NewReader(`{"name":"Alice","age":30,}`))

	require.ErrorIs(t, err, document.ErrInvalidRecord)

	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}
