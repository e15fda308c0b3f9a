package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadsCounter_CountsByTypeAndResult(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"name":"Alice","age":30}`), 0o644))

	emptyPath := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(emptyPath, []byte("name,age\n"), 0o644))

	jsonSuccess := readsCounter.WithLabelValues("json", "success")
	csvNotFound := readsCounter.WithLabelValues("csv", "not_found")
	csvSuccess := readsCounter.WithLabelValues("csv", "success")

	beforeJSON := testutil.ToFloat64(jsonSuccess)
	beforeNotFound := testutil.ToFloat64(csvNotFound)
	beforeCSV := testutil.ToFloat64(csvSuccess)

	_, err := JSONReader{}.ReadRecord(jsonPath)
	require.NoError(t, err)

	_, err = CSVReader{}.ReadRecord(emptyPath)
	require.ErrorIs(t, err, ErrRecordNotFound)

	assert.Equal(t, beforeJSON+1, testutil.ToFloat64(jsonSuccess))
	assert.Equal(t, beforeNotFound+1, testutil.ToFloat64(csvNotFound))
	assert.Equal(t, beforeCSV, testutil.ToFloat64(csvSuccess))
}

func TestResultLabel(t *testing.T) {
	notExist := &os.PathError{Op: "open", Path: "x", Err: os.ErrNotExist}
	denied := &os.PathError{Op: "open", Path: "x", Err: os.ErrPermission}

	assert.Equal(t, "success", resultLabel(nil))
	assert.Equal(t, "not_found", resultLabel(errors.Wrap(ErrRecordNotFound, "x")))
	assert.Equal(t, "invalid", resultLabel(errors.Wrap(ErrInvalidRecord, "x")))
	assert.Equal(t, "unreadable", resultLabel(notExist))
	assert.Equal(t, "unreadable", resultLabel(denied))
	assert.Equal(t, "error", resultLabel(errors.New("boom")))
}
