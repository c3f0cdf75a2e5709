// Package report holds the extraction output model and its export surfaces.
package report

import (
	"time"

	"github.com/google/uuid"
)

// Column headers, in the fixed export order.
var Columns = []string{"Source Document", "Created Date", "Posted Date", "Summary"}

// Record is one output row. SourceDocument is the URL-safe encoded filename;
// the date fields are free-text strings as returned by the oracle (they may
// be empty or non-dates if the document carries none); Summary keeps the
// oracle's bullet formatting verbatim.
type Record struct {
	SourceDocument string `json:"source_document"`
	CreatedDate    string `json:"created_date"`
	PostedDate     string `json:"posted_date"`
	Summary        string `json:"summary"`
}

// Report is the result of one extraction run.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Records     []Record  `json:"records"`
}

// New wraps records into a Report with a fresh run ID.
func New(records []Record) *Report {
	return &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Records:     records,
	}
}
