package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteExcel_EmptyCreatesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	require.NoError(t, WriteExcel(path, nil))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "empty record set must not create a file")
}

func TestWriteExcel_RowsAndColumnOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	records := []Record{
		{
			SourceDocument: "a%20doc.pdf",
			CreatedDate:    "2023-01-01",
			PostedDate:     "2023-02-15",
			Summary:        "- point one\n- point two",
		},
		{
			SourceDocument: "b.pdf",
			CreatedDate:    "",
			PostedDate:     "unknown",
			Summary:        "- single point",
		},
	}

	require.NoError(t, WriteExcel(path, records))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, Columns, rows[0])
	assert.Equal(t, []string{"a%20doc.pdf", "2023-01-01", "2023-02-15", "- point one\n- point two"}, rows[1])
	assert.Equal(t, "b.pdf", rows[2][0])
	assert.Equal(t, "unknown", rows[2][2])
}

func TestNew_AssignsRunID(t *testing.T) {
	r1 := New(nil)
	r2 := New(nil)
	assert.NotEmpty(t, r1.RunID)
	assert.NotEqual(t, r1.RunID, r2.RunID)
	assert.False(t, r1.GeneratedAt.IsZero())
}
