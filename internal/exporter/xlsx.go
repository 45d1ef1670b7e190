// Package exporter turns a class's grades into a flat table and writes it as
// a one-sheet spreadsheet.
package exporter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/taskmaster/internal/domain"
	"github.com/alexanderramin/taskmaster/internal/views"
	"github.com/xuri/excelize/v2"
)

// MaxSheetNameLen is the spreadsheet format's limit on sheet names.
const MaxSheetNameLen = 31

// NameHeader is the first header cell of every export.
const NameHeader = "Student Name"

// Table returns the export layout for class: a header row of "Student Name"
// followed by task names, then one row per student holding the student's
// name and a grade code per task. Rows and columns follow the class's current
// student and task order.
func Table(class *domain.ClassGroup) [][]string {
	m := views.Overview(class)

	header := make([]string, 0, len(m.Tasks)+1)
	header = append(header, NameHeader)
	for _, t := range m.Tasks {
		header = append(header, t.Name)
	}

	table := make([][]string, 0, len(m.Rows)+1)
	table = append(table, header)
	for _, row := range m.Rows {
		line := make([]string, 0, len(row.Cells)+1)
		line = append(line, row.Name)
		for _, g := range row.Cells {
			line = append(line, g.Code())
		}
		table = append(table, line)
	}
	return table
}

// SheetName derives a sheet name from a class name: characters the format
// forbids are replaced with '_' and the result is cut to MaxSheetNameLen.
// A sheet name may not start or end with an apostrophe.
func SheetName(className string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, className)
	name = strings.Trim(name, "'")
	if runes := []rune(name); len(runes) > MaxSheetNameLen {
		name = strings.TrimRight(string(runes[:MaxSheetNameLen]), "'")
	}
	if strings.TrimSpace(name) == "" {
		return "Sheet1"
	}
	return name
}

// FileName returns the export file name for a class, "{name}_Report.xlsx".
// Path separators in the class name are replaced so the file always lands
// in the target directory.
func FileName(className string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_").Replace(className)
	return safe + "_Report.xlsx"
}

// WriteXLSX encodes the class table as a workbook with a single sheet and
// writes it to w.
func WriteXLSX(w io.Writer, class *domain.ClassGroup) error {
	f, err := buildWorkbook(class)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// SaveXLSX writes the class workbook into dir and returns the file path.
func SaveXLSX(dir string, class *domain.ClassGroup) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(dir, FileName(class.Name))

	f, err := buildWorkbook(class)
	if err != nil {
		return "", err
	}
	defer f.Close()

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	if err := f.Write(out); err != nil {
		out.Close()
		os.Remove(path)
		return "", fmt.Errorf("writing workbook: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("closing export file: %w", err)
	}
	return path, nil
}

func buildWorkbook(class *domain.ClassGroup) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := SheetName(class.Name)
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("naming sheet %q: %w", sheet, err)
		}
	}

	for i, row := range Table(class) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("addressing row %d: %w", i+1, err)
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	return f, nil
}
