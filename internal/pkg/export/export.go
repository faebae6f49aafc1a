// Package export renders tabular record sets as downloadable CSV or XLSX files.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Format is a downloadable file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// SheetName is the single worksheet written into spreadsheet exports.
const SheetName = "Placements"

// BaseFileName is the download name without extension.
const BaseFileName = "placement_records"

// ParseFormat maps the export "type" parameter onto a Format. Anything that is not a
// spreadsheet alias falls back to CSV.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "excel", "xlsx":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

// ContentType returns the MIME type sent with the download.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// FileName returns placement_records.<ext>.
func (f Format) FileName() string {
	if f == FormatXLSX {
		return BaseFileName + ".xlsx"
	}
	return BaseFileName + ".csv"
}

// Table is a fully materialized header-plus-rows result set. Cell values are string,
// int, int64 or float64.
type Table struct {
	Headers []string
	Rows    [][]interface{}
}

// Write serializes t in the given format.
func Write(w io.Writer, format Format, t Table) error {
	switch format {
	case FormatXLSX:
		return WriteXLSX(w, t)
	case FormatCSV:
		return WriteCSV(w, t)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// Render is Write into a byte slice.
func Render(format Format, t Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, format, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCSV writes a UTF-8, comma-delimited file with a header row.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	record := make([]string, len(t.Headers))
	for i, row := range t.Rows {
		record = record[:0]
		for _, cell := range row {
			record = append(record, FormatCell(cell))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes a workbook holding one sheet named SheetName.
func WriteXLSX(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// FormatCell renders a cell as text. Floats always carry a fractional part so that
// 120000 is written as 120000.0.
func FormatCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		s := strconv.FormatFloat(val, 'f', -1, 64)
		if !math.IsInf(val, 0) && !math.IsNaN(val) && !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	default:
		return fmt.Sprint(val)
	}
}
