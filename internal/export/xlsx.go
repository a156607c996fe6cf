// Package export renders the word list as a spreadsheet.
package export

import (
	"bytes"
	"fmt"

	"vocabtrainer/internal/domain"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Words"

var header = []interface{}{"Front", "Back", "Mastery", "Status"}

// XLSX writes list entries to an in-memory workbook, one row per word
func XLSX(entries []domain.ListEntry) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{e.Word.Front, e.Word.Back, e.Word.MasteryCount, string(e.Status)}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}
