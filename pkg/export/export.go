// Package export renders small tabular datasets as downloadable files.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Table is an ordered tabular dataset. Every row must have one cell per
// column.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

func (t Table) validate() error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("export table has no columns")
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("export row %d has %d cells, want %d", i, len(row), len(t.Columns))
		}
	}
	return nil
}

// CSV renders the table as CSV with a header row. The title is not part
// of the CSV output.
func CSV(table Table) ([]byte, error) {
	if err := table.validate(); err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(table.Columns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	if err := w.WriteAll(table.Rows); err != nil {
		return nil, fmt.Errorf("write csv rows: %w", err)
	}
	return buf.Bytes(), nil
}

// PDF renders the table as a single portrait A4 document with the title
// centred above an evenly sized grid.
func PDF(table Table) ([]byte, error) {
	if err := table.validate(); err != nil {
		return nil, err
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(12, 16, 12)
	doc.AddPage()

	if table.Title != "" {
		doc.SetFont("Helvetica", "B", 15)
		doc.CellFormat(0, 9, table.Title, "", 1, "C", false, 0, "")
		doc.Ln(4)
	}

	pageWidth, _ := doc.GetPageSize()
	left, _, right, _ := doc.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(table.Columns))

	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(235, 235, 235)
	for _, column := range table.Columns {
		doc.CellFormat(colWidth, 8, column, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 9)
	for _, row := range table.Rows {
		for _, cell := range row {
			doc.CellFormat(colWidth, 7, cell, "1", 0, "L", false, 0, "")
		}
		doc.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := doc.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
