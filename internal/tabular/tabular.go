// Package tabular writes the code table to CSV and XLSX and reads code
// columns back out of user-supplied spreadsheets for validation.
package tabular

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/country-codes/internal/countrycode"
)

// Header is the column layout used by every export.
var Header = []string{"code", "name", "kind"}

// ReadOptions selects the column holding codes.
type ReadOptions struct {
	Column     int    // zero-based column index
	SheetIndex int    // xlsx only, default 0
	SheetName  string // xlsx only, overrides SheetIndex
	SkipRows   int    // number of header rows to skip
	Delimiter  rune   // csv only, default ','
}

func entryRow(e countrycode.Entry) []string {
	return []string{e.Code, e.Name, string(e.Kind)}
}

// WriteCSV writes entries with a header row.
func WriteCSV(w io.Writer, entries []countrycode.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return eris.Wrap(err, "csv: write header")
	}
	for _, e := range entries {
		if err := cw.Write(entryRow(e)); err != nil {
			return eris.Wrapf(err, "csv: write row %s", e.Code)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "csv: flush")
	}
	return nil
}

// ReadCodes reads the configured column from a .csv or .xlsx file. Cells are
// whitespace-trimmed; empty cells and rows too short for the column are
// skipped.
func ReadCodes(path string, opts ReadOptions) ([]string, error) {
	if opts.Column < 0 {
		return nil, eris.Errorf("tabular: column must be >= 0, got %d", opts.Column)
	}

	var (
		rows [][]string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		rows, err = readCSV(path, opts)
	case ".xlsx":
		rows, err = readXLSX(path, opts)
	default:
		return nil, eris.Errorf("tabular: unsupported file type %q", ext)
	}
	if err != nil {
		return nil, err
	}

	var codes []string
	for i, row := range rows {
		if i < opts.SkipRows || opts.Column >= len(row) {
			continue
		}
		if cell := strings.TrimSpace(row[opts.Column]); cell != "" {
			codes = append(codes, cell)
		}
	}
	return codes, nil
}

func readCSV(path string, opts ReadOptions) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "csv: open file")
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.FieldsPerRecord = -1 // allow variable fields

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "csv: read rows")
	}
	return rows, nil
}
