package export

import (
	"fmt"
	"io"

	"github.com/mr-thop/recruit-edge-api/internal/models"
	"github.com/xuri/excelize/v2"
)

// WriteExcel writes a schedule as a styled Excel timetable with a
// single "Interview Schedule" sheet
func WriteExcel(w io.Writer, schedule models.Schedule) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Interview Schedule"
	f.SetSheetName("Sheet1", sheet)

	f.SetColWidth(sheet, "A", "A", 25)
	f.SetColWidth(sheet, "B", "B", 30)
	f.SetColWidth(sheet, "C", "C", 12)
	f.SetColWidth(sheet, "D", "D", 10)
	f.SetColWidth(sheet, "E", "E", 10)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	headers := []string{"Candidate", "Email", "Date", "Start", "End"}
	for col, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+col)))
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, slot := range schedule {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), slot.Candidate.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), slot.Candidate.Email)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), slot.Start.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), slot.Start.Format("15:04"))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), slot.End.Format("15:04"))
	}

	if len(schedule) > 0 {
		f.AutoFilter(sheet, fmt.Sprintf("A1:E%d", len(schedule)+1), []excelize.AutoFilterOptions{})
	}

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
