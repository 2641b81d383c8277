package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes a single-sheet workbook with a header row followed by the
// given rows.
func WriteXLSX(path, sheet string, columns []string, rows [][]any, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	f := excelize.NewFile()
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	for i, h := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	// Widen columns roughly to header length; evidence-style columns get more.
	for i, h := range columns {
		name, _ := excelize.ColumnNumberToName(i + 1)
		width := float64(len(h) + 6)
		if width < 14 {
			width = 14
		}
		if width > 60 {
			width = 60
		}
		_ = f.SetColWidth(sheet, name, name, width)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	logger.Info("export.xlsx.ok",
		"path", path,
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// ReadSheet reads the first sheet of an existing workbook into a header row
// plus data rows. Short rows are padded so every row matches the header
// width.
func ReadSheet(path string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("xlsx open: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("xlsx: no sheets in %s", path)
	}
	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("xlsx rows: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, nil
	}

	header := all[0]
	rows := make([][]string, 0, len(all)-1)
	for _, r := range all[1:] {
		row := make([]string, len(header))
		copy(row, r)
		rows = append(rows, row)
	}
	return header, rows, nil
}
