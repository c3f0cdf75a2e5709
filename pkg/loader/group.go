package loader

import "path/filepath"

// UnknownFileGroup collects records whose metadata carries no filename.
const UnknownFileGroup = "Unknown File"

// Groups partitions records by source filename. Group names are basenames
// (path prefix stripped), compared case-sensitively, and iterate in
// first-seen order so downstream output is deterministic for a fixed input
// order.
type Groups struct {
	order  []string
	byName map[string][]Record
}

// GroupByFile partitions records by the basename of their filename metadata.
// Records without a resolvable filename land in the "Unknown File" group.
// Every record belongs to exactly one group.
func GroupByFile(records []Record) *Groups {
	g := &Groups{byName: make(map[string][]Record)}
	for _, rec := range records {
		name := UnknownFileGroup
		if fn := rec.FileName(); fn != "" {
			name = filepath.Base(fn)
		}
		if _, seen := g.byName[name]; !seen {
			g.order = append(g.order, name)
		}
		g.byName[name] = append(g.byName[name], rec)
	}
	return g
}

// Names returns the group names in first-seen order.
func (g *Groups) Names() []string {
	names := make([]string, len(g.order))
	copy(names, g.order)
	return names
}

// Records returns the records of the named group in load order.
func (g *Groups) Records(name string) []Record {
	return g.byName[name]
}

// Len returns the number of distinct groups.
func (g *Groups) Len() int {
	return len(g.order)
}
