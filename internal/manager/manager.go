// Package manager keeps completed extraction runs available to the serving
// surfaces (web table, MCP tools).
package manager

import (
	"sync"

	"github.com/agext/levenshtein"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/duynguyendang/docdates/pkg/extract"
	"github.com/duynguyendang/docdates/pkg/report"
)

// MaxCachedRuns bounds how many past runs stay addressable by run ID.
const MaxCachedRuns = 10

// ReportManager holds recent extraction runs. The latest run backs the web
// table; older runs remain fetchable by ID until evicted.
type ReportManager struct {
	mu       sync.RWMutex
	runs     *lru.Cache[string, *report.Report]
	latestID string
}

// NewReportManager creates an empty manager.
func NewReportManager() *ReportManager {
	cache, _ := lru.New[string, *report.Report](MaxCachedRuns)
	return &ReportManager{runs: cache}
}

// Add registers a completed run and marks it as the latest.
func (m *ReportManager) Add(r *report.Report) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs.Add(r.RunID, r)
	m.latestID = r.RunID
}

// Latest returns the most recent run, if any.
func (m *ReportManager) Latest() (*report.Report, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.latestID == "" {
		return nil, false
	}
	return m.runs.Get(m.latestID)
}

// Get returns a run by ID.
func (m *ReportManager) Get(runID string) (*report.Report, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.runs.Get(runID)
}

// FindRecord returns the record of the latest run whose source document best
// matches name, comparing decoded filenames by edit distance. An exact match
// always wins; otherwise the closest name within a distance of half the
// query length is accepted.
func (m *ReportManager) FindRecord(name string) (report.Record, bool) {
	latest, ok := m.Latest()
	if !ok || len(latest.Records) == 0 {
		return report.Record{}, false
	}

	query := extract.DecodeSourceName(name)
	best := -1
	bestDist := 0
	for i, rec := range latest.Records {
		candidate := extract.DecodeSourceName(rec.SourceDocument)
		if candidate == query {
			return rec, true
		}
		d := levenshtein.Distance(query, candidate, nil)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}

	if best >= 0 && bestDist <= len(query)/2 {
		return latest.Records[best], true
	}
	return report.Record{}, false
}
