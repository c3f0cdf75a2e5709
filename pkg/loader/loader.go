// Package loader reads raw documents from an input directory and groups
// them into logical files for extraction. PDF files produce one record per
// page; everything else is read as plain text in a single record.
package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	apperrors "github.com/duynguyendang/docdates/pkg/common/errors"
)

// MetaFileName is the metadata key carrying the record's source filename.
const MetaFileName = "file_name"

// Record is one raw content blob extracted from a file (a whole text file or
// a single PDF page) together with its metadata. Records are immutable once
// created.
type Record struct {
	Content  string
	Metadata map[string]string
}

// FileName returns the record's source filename, or "" if the metadata does
// not carry one.
func (r Record) FileName() string {
	if r.Metadata == nil {
		return ""
	}
	return r.Metadata[MetaFileName]
}

// LoadDirectory reads every file under dir (recursively, skipping hidden
// entries) into records. An empty or missing directory is an input error:
// the run must abort before any oracle work starts.
func LoadDirectory(dir string) ([]Record, error) {
	fmt.Printf("Loading documents from '%s'...\n", dir)

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrNoDocuments, dir)
	}

	var records []Record
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") && path != dir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		recs, err := loadFile(path)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		records = append(records, recs...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrNoDocuments, dir)
	}
	return records, nil
}

func loadFile(path string) ([]Record, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return loadPDF(path)
	}
	return loadText(path)
}

func loadText(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return []Record{{
		Content:  string(data),
		Metadata: map[string]string{MetaFileName: path},
	}}, nil
}

// loadPDF extracts plain text page by page, one record per page, so the
// grouper sees the same file split into multiple chunks.
func loadPDF(path string) ([]Record, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	var records []Record
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		records = append(records, Record{
			Content: text,
			Metadata: map[string]string{
				MetaFileName: path,
				"page":       fmt.Sprintf("%d", i),
			},
		})
	}
	return records, nil
}
