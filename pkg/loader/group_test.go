package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(fileName, content string) Record {
	md := map[string]string{}
	if fileName != "" {
		md[MetaFileName] = fileName
	}
	return Record{Content: content, Metadata: md}
}

func TestGroupByFile_Basenames(t *testing.T) {
	records := []Record{
		rec("data/report.pdf", "page 1"),
		rec("data/report.pdf", "page 2"),
		rec("archive/old/report.pdf", "page 3"),
		rec("data/notes.txt", "notes"),
	}

	groups := GroupByFile(records)

	// Nested paths with the same leaf name collapse into one group.
	require.Equal(t, 2, groups.Len())
	assert.Equal(t, []string{"report.pdf", "notes.txt"}, groups.Names())
	assert.Len(t, groups.Records("report.pdf"), 3)
	assert.Len(t, groups.Records("notes.txt"), 1)
}

func TestGroupByFile_LoadOrderWithinGroup(t *testing.T) {
	records := []Record{
		rec("a.pdf", "first"),
		rec("b.pdf", "other"),
		rec("a.pdf", "second"),
	}

	groups := GroupByFile(records)
	got := groups.Records("a.pdf")
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Content)
	assert.Equal(t, "second", got[1].Content)
}

func TestGroupByFile_UnknownFile(t *testing.T) {
	records := []Record{
		{Content: "orphan"},
		rec("a.pdf", "known"),
	}

	groups := GroupByFile(records)
	require.Equal(t, 2, groups.Len())
	assert.Equal(t, []string{UnknownFileGroup, "a.pdf"}, groups.Names())
	assert.Len(t, groups.Records(UnknownFileGroup), 1)
}

func TestGroupByFile_CaseSensitive(t *testing.T) {
	records := []Record{
		rec("a.pdf", "lower"),
		rec("A.pdf", "upper"),
	}

	groups := GroupByFile(records)
	assert.Equal(t, 2, groups.Len())
	assert.Len(t, groups.Records("a.pdf"), 1)
	assert.Len(t, groups.Records("A.pdf"), 1)
}

func TestGroupByFile_FirstSeenOrder(t *testing.T) {
	records := []Record{
		rec("c.pdf", "1"),
		rec("a.pdf", "2"),
		rec("c.pdf", "3"),
		rec("b.pdf", "4"),
	}

	groups := GroupByFile(records)
	assert.Equal(t, []string{"c.pdf", "a.pdf", "b.pdf"}, groups.Names())
}
