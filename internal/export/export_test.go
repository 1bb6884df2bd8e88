package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/mr-thop/recruit-edge-api/internal/models"
	"github.com/xuri/excelize/v2"
)

func sampleSchedule(t *testing.T) models.Schedule {
	t.Helper()
	start, err := time.Parse("2006-01-02 15:04", "2024-01-08 09:00")
	if err != nil {
		t.Fatalf("bad test timestamp: %v", err)
	}

	return models.Schedule{
		{
			Candidate: models.Candidate{Name: "Ada Lovelace", Email: "ada@example.com"},
			Start:     start,
			End:       start.Add(30 * time.Minute),
		},
		{
			Candidate: models.Candidate{Name: "Grace Hopper", Email: "grace@example.com"},
			Start:     start.Add(30 * time.Minute),
			End:       start.Add(60 * time.Minute),
		},
	}
}

// TestWriteCSV tests the export column contract: Name, Email, Slot
// Start, Slot End
func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleSchedule(t)); err != nil {
		t.Fatalf("WriteCSV() failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Failed to re-read exported CSV: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d rows", len(rows))
	}

	wantHeader := []string{"Name", "Email", "Slot Start", "Slot End"}
	for i, want := range wantHeader {
		if rows[0][i] != want {
			t.Errorf("Header column %d: expected %q, got %q", i, want, rows[0][i])
		}
	}

	if rows[1][0] != "Ada Lovelace" || rows[1][2] != "2024-01-08 09:00" || rows[1][3] != "2024-01-08 09:30" {
		t.Errorf("Unexpected first data row: %v", rows[1])
	}
	if rows[2][1] != "grace@example.com" || rows[2][2] != "2024-01-08 09:30" {
		t.Errorf("Unexpected second data row: %v", rows[2])
	}
}

// TestWriteCSV_EmptySchedule tests that an empty schedule still
// produces a header row
func TestWriteCSV_EmptySchedule(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, models.Schedule{}); err != nil {
		t.Fatalf("WriteCSV() failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Failed to re-read exported CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("Expected only the header row, got %d rows", len(rows))
	}
}

// TestWriteExcel tests that the workbook round-trips with the expected
// sheet and cells
func TestWriteExcel(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteExcel(&buf, sampleSchedule(t)); err != nil {
		t.Fatalf("WriteExcel() failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("Failed to re-open exported workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Interview Schedule")
	if err != nil {
		t.Fatalf("Failed to read Interview Schedule sheet: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Candidate" {
		t.Errorf("Expected Candidate header, got %q", rows[0][0])
	}
	if rows[1][0] != "Ada Lovelace" || rows[1][2] != "2024-01-08" || rows[1][3] != "09:00" {
		t.Errorf("Unexpected first data row: %v", rows[1])
	}
}
