package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duynguyendang/docdates/pkg/report"
)

func TestReportManager_LatestAndGet(t *testing.T) {
	m := NewReportManager()

	_, ok := m.Latest()
	assert.False(t, ok)

	r1 := report.New([]report.Record{{SourceDocument: "a.pdf"}})
	r2 := report.New([]report.Record{{SourceDocument: "b.pdf"}})
	m.Add(r1)
	m.Add(r2)

	latest, ok := m.Latest()
	require.True(t, ok)
	assert.Equal(t, r2.RunID, latest.RunID)

	got, ok := m.Get(r1.RunID)
	require.True(t, ok)
	assert.Equal(t, "a.pdf", got.Records[0].SourceDocument)
}

func TestReportManager_FindRecord(t *testing.T) {
	m := NewReportManager()
	m.Add(report.New([]report.Record{
		{SourceDocument: "annual%20report.pdf", CreatedDate: "2023-01-01"},
		{SourceDocument: "meeting-notes.pdf", CreatedDate: "2023-03-03"},
	}))

	// Exact match on the decoded name.
	rec, ok := m.FindRecord("annual report.pdf")
	require.True(t, ok)
	assert.Equal(t, "2023-01-01", rec.CreatedDate)

	// Fuzzy match tolerates a small typo.
	rec, ok = m.FindRecord("meetng-notes.pdf")
	require.True(t, ok)
	assert.Equal(t, "2023-03-03", rec.CreatedDate)

	// Wildly different names do not match.
	_, ok = m.FindRecord("zz")
	assert.False(t, ok)
}

func TestReportManager_FindRecordEmpty(t *testing.T) {
	m := NewReportManager()
	_, ok := m.FindRecord("anything.pdf")
	assert.False(t, ok)
}
