// Package extract orchestrates the per-document extraction: one fresh
// retrieval index per grouped document, three fixed questions, one record.
package extract

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/duynguyendang/docdates/pkg/loader"
	"github.com/duynguyendang/docdates/pkg/oracle"
	"github.com/duynguyendang/docdates/pkg/report"
)

// QuestionKind identifies one of the three extraction questions.
type QuestionKind int

const (
	QuestionCreatedDate QuestionKind = iota
	QuestionPostedDate
	QuestionSummary
)

var prompts = map[QuestionKind]string{
	QuestionCreatedDate: "What is the creation date mentioned in this document? " +
		"Respond with only the date and nothing else.",
	QuestionPostedDate: "What is the posted date mentioned in this document? " +
		"Respond with only the date and nothing else.",
	QuestionSummary: "What is the summary in this document? " +
		"Respond with only summary from Headlines as bullet points line by line.",
}

// Prompt returns the fixed question text for the kind.
func (k QuestionKind) Prompt() string {
	return prompts[k]
}

// FailedValue marks fields of a document whose extraction failed when the
// run is configured to continue past failures.
const FailedValue = "EXTRACTION_FAILED"

// Options tunes the orchestrator's failure semantics.
type Options struct {
	// ContinueOnError records FailedValue for a failing document instead
	// of aborting the whole run.
	ContinueOnError bool
}

// Run produces exactly one record per group, in the grouper's first-seen
// order. Each group gets its own index built from its records alone so
// queries cannot leak context from unrelated files.
func Run(ctx context.Context, groups *loader.Groups, builder oracle.IndexBuilder, opts Options) ([]report.Record, error) {
	fmt.Printf("\nFound %d unique documents to process.\n", groups.Len())

	records := make([]report.Record, 0, groups.Len())
	for _, name := range groups.Names() {
		fmt.Printf("\nProcessing '%s'...\n", name)

		rec, err := extractGroup(ctx, name, groups.Records(name), builder)
		if err != nil {
			if !opts.ContinueOnError {
				return nil, fmt.Errorf("extraction failed for %s: %w", name, err)
			}
			log.Printf("Extraction failed for %s: %v", name, err)
			rec = report.Record{
				SourceDocument: EncodeSourceName(name),
				CreatedDate:    FailedValue,
				PostedDate:     FailedValue,
				Summary:        FailedValue,
			}
		}

		fmt.Printf("  - Extracted Created Date: %s\n", rec.CreatedDate)
		fmt.Printf("  - Extracted Posted Date: %s\n", rec.PostedDate)
		fmt.Printf("  - Extracted Summary: %s\n", rec.Summary)
		records = append(records, rec)
	}
	return records, nil
}

func extractGroup(ctx context.Context, name string, recs []loader.Record, builder oracle.IndexBuilder) (report.Record, error) {
	contents := make([]string, 0, len(recs))
	for _, r := range recs {
		contents = append(contents, r.Content)
	}

	idx, err := builder.Build(ctx, contents)
	if err != nil {
		return report.Record{}, fmt.Errorf("failed to build index: %w", err)
	}

	created, err := idx.Query(ctx, QuestionCreatedDate.Prompt())
	if err != nil {
		return report.Record{}, err
	}
	posted, err := idx.Query(ctx, QuestionPostedDate.Prompt())
	if err != nil {
		return report.Record{}, err
	}
	summary, err := idx.Query(ctx, QuestionSummary.Prompt())
	if err != nil {
		return report.Record{}, err
	}

	// Dates are trimmed; the summary keeps its bullet formatting verbatim.
	return report.Record{
		SourceDocument: EncodeSourceName(name),
		CreatedDate:    strings.TrimSpace(created),
		PostedDate:     strings.TrimSpace(posted),
		Summary:        summary,
	}, nil
}

// EncodeSourceName makes a filename URL-safe by replacing spaces with %20.
// No other character is altered and no existence check is performed.
func EncodeSourceName(name string) string {
	return strings.ReplaceAll(name, " ", "%20")
}

// DecodeSourceName reverses EncodeSourceName for display and lookup.
func DecodeSourceName(encoded string) string {
	return strings.ReplaceAll(encoded, "%20", " ")
}
