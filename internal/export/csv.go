package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/mr-thop/recruit-edge-api/internal/models"
)

// timeLayout is the timestamp format used in exports, matching the
// start_date format accepted by the scheduling endpoint.
const timeLayout = "2006-01-02 15:04"

// WriteCSV writes a schedule as CSV with one row per slot:
// Name, Email, Slot Start, Slot End.
func WriteCSV(w io.Writer, schedule models.Schedule) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Name", "Email", "Slot Start", "Slot End"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, slot := range schedule {
		row := []string{
			slot.Candidate.Name,
			slot.Candidate.Email,
			slot.Start.Format(timeLayout),
			slot.End.Format(timeLayout),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
