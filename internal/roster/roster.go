package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/mr-thop/recruit-edge-api/internal/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoCandidates is returned when a file parses cleanly but holds no
// candidate rows.
var ErrNoCandidates = errors.New("no candidates found in file")

// ErrMissingColumns is returned when the header row has no Name or
// Email column.
var ErrMissingColumns = errors.New("file must contain Name and Email columns")

// Parse reads a candidate list from an uploaded file, dispatching on
// the filename extension. CSV is the format the front-ends upload;
// XLSX sheets are accepted as well.
func Parse(filename string, r io.Reader) ([]models.Candidate, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return ParseXLSX(r)
	default:
		return ParseCSV(r)
	}
}

// ParseCSV reads candidates from a CSV file with a header row. Column
// order does not matter and extra columns are ignored; row order is
// preserved as the slot assignment order.
func ParseCSV(r io.Reader) ([]models.Candidate, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	return candidatesFromRows(rows)
}

// ParseXLSX reads candidates from the first sheet of an Excel workbook
func ParseXLSX(r io.Reader) ([]models.Candidate, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoCandidates
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	return candidatesFromRows(rows)
}

// candidatesFromRows locates the Name and Email columns in the header
// row and collects one candidate per data row, in file order. Blank
// rows are skipped; duplicates are kept.
func candidatesFromRows(rows [][]string) ([]models.Candidate, error) {
	if len(rows) == 0 {
		return nil, ErrNoCandidates
	}

	nameCol, emailCol := -1, -1
	for i, header := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(header)) {
		case "name", "candidate", "candidate name":
			if nameCol == -1 {
				nameCol = i
			}
		case "email", "e-mail", "email address":
			if emailCol == -1 {
				emailCol = i
			}
		}
	}
	if nameCol == -1 || emailCol == -1 {
		return nil, ErrMissingColumns
	}

	candidates := make([]models.Candidate, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := cell(row, nameCol)
		email := cell(row, emailCol)
		if name == "" && email == "" {
			continue
		}
		candidates = append(candidates, models.Candidate{Name: name, Email: email})
	}

	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	return candidates, nil
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
