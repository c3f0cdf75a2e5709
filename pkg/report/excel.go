package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// WriteExcel writes one row per record to an Excel file at path, columns in
// the fixed order {Source Document, Created Date, Posted Date, Summary}.
// With no records it surfaces a notice and creates no file.
func WriteExcel(path string, records []Record) error {
	if len(records) == 0 {
		fmt.Println("No data was extracted. Cannot generate Excel file.")
		return nil
	}

	fmt.Println("\nExporting extracted data to Excel...")

	f := excelize.NewFile()
	defer f.Close()

	for col, header := range Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
	}

	for i, rec := range records {
		values := []string{rec.SourceDocument, rec.CreatedDate, rec.PostedDate, rec.Summary}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Printf("Successfully created report: '%s'\n", path)
	return nil
}
