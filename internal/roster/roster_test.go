package roster

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// TestParseCSV_HeaderVariants tests that common header spellings are
// recognized regardless of case and column order
func TestParseCSV_HeaderVariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "Canonical header",
			input: "Name,Email\nAda Lovelace,ada@example.com\n",
		},
		{
			name:  "Lowercase header",
			input: "name,email\nAda Lovelace,ada@example.com\n",
		},
		{
			name:  "Reversed columns",
			input: "Email,Name\nada@example.com,Ada Lovelace\n",
		},
		{
			name:  "Extra columns ignored",
			input: "Phone,Name,Notes,Email\n555-0100,Ada Lovelace,senior,ada@example.com\n",
		},
		{
			name:  "Candidate Name header",
			input: "Candidate Name,E-mail\nAda Lovelace,ada@example.com\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates, err := ParseCSV(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ParseCSV() failed: %v", err)
			}
			if len(candidates) != 1 {
				t.Fatalf("Expected 1 candidate, got %d", len(candidates))
			}
			if candidates[0].Name != "Ada Lovelace" || candidates[0].Email != "ada@example.com" {
				t.Errorf("Unexpected candidate: %+v", candidates[0])
			}
		})
	}
}

// TestParseCSV_PreservesOrderAndDuplicates tests that file order is
// kept and duplicate rows are scheduled independently
func TestParseCSV_PreservesOrderAndDuplicates(t *testing.T) {
	input := "Name,Email\n" +
		"Grace Hopper,grace@example.com\n" +
		"Ada Lovelace,ada@example.com\n" +
		"\n" +
		"Grace Hopper,grace@example.com\n"

	candidates, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV() failed: %v", err)
	}

	if len(candidates) != 3 {
		t.Fatalf("Expected 3 candidates, got %d", len(candidates))
	}
	if candidates[0].Name != "Grace Hopper" || candidates[1].Name != "Ada Lovelace" || candidates[2].Name != "Grace Hopper" {
		t.Errorf("File order not preserved: %+v", candidates)
	}
}

// TestParseCSV_Errors tests rejection of unusable files
func TestParseCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "Empty file",
			input:   "",
			wantErr: ErrNoCandidates,
		},
		{
			name:    "Missing email column",
			input:   "Name,Phone\nAda,555-0100\n",
			wantErr: ErrMissingColumns,
		},
		{
			name:    "Header only",
			input:   "Name,Email\n",
			wantErr: ErrNoCandidates,
		},
		{
			name:    "Only blank rows",
			input:   "Name,Email\n,\n,\n",
			wantErr: ErrNoCandidates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestParseXLSX tests reading candidates from the first sheet of a
// workbook
func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "Name")
	f.SetCellValue("Sheet1", "B1", "Email")
	f.SetCellValue("Sheet1", "A2", "Ada Lovelace")
	f.SetCellValue("Sheet1", "B2", "ada@example.com")
	f.SetCellValue("Sheet1", "A3", "Grace Hopper")
	f.SetCellValue("Sheet1", "B3", "grace@example.com")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Failed to build test workbook: %v", err)
	}

	candidates, err := ParseXLSX(&buf)
	if err != nil {
		t.Fatalf("ParseXLSX() failed: %v", err)
	}

	if len(candidates) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(candidates))
	}
	if candidates[1].Email != "grace@example.com" {
		t.Errorf("Unexpected second candidate: %+v", candidates[1])
	}
}

// TestParse_DispatchesOnExtension tests format selection by filename
func TestParse_DispatchesOnExtension(t *testing.T) {
	csvInput := "Name,Email\nAda,ada@example.com\n"

	candidates, err := Parse("candidates.csv", strings.NewReader(csvInput))
	if err != nil {
		t.Fatalf("Parse() failed for csv: %v", err)
	}
	if len(candidates) != 1 {
		t.Errorf("Expected 1 candidate from csv, got %d", len(candidates))
	}

	// Unknown extensions fall back to CSV parsing.
	candidates, err = Parse("candidates.txt", strings.NewReader(csvInput))
	if err != nil {
		t.Fatalf("Parse() failed for txt fallback: %v", err)
	}
	if len(candidates) != 1 {
		t.Errorf("Expected 1 candidate from txt fallback, got %d", len(candidates))
	}
}
