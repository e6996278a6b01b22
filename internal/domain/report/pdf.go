package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// RenderTimesheetPDF renders a period summary as an A4 timesheet.
func RenderTimesheetPDF(summary Summary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Timesheet")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s to %s", summary.Start.Format("2006-01-02"), summary.End.Format("2006-01-02")))
	pdf.Ln(6)
	if summary.EmployeeName != "" {
		pdf.Cell(0, 7, fmt.Sprintf("Employee: %s", summary.EmployeeName))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	headers := []string{"Day", "Employee", "Worked", "Lunch adj.", "Late", "Overtime", "Bank"}
	widths := []float64{24, 46, 22, 22, 18, 22, 22}

	pdf.SetFont("Helvetica", "B", 10)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, day := range summary.Days {
		cells := []string{
			day.Day.Format("2006-01-02"),
			day.EmployeeName,
			formatMinutes(day.WorkedMinutes),
			formatMinutes(day.LunchDeficitMinutes),
			formatMinutes(day.LatenessMinutes),
			formatMinutes(day.OvertimeMinutes),
			formatSignedMinutes(day.BankDeltaMinutes),
		}
		for i, cell := range cells {
			align := "C"
			if i == 1 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Total worked: %s", formatMinutes(summary.TotalWorkedMinutes)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Time bank: %s", formatSignedMinutes(summary.BankMinutes)))
	if summary.EstimatedPay != nil {
		pdf.Ln(6)
		pdf.Cell(0, 7, fmt.Sprintf("Estimated pay: %s", summary.EstimatedPay.StringFixed(2)))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = -minutes
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func formatSignedMinutes(minutes int) string {
	if minutes < 0 {
		return "-" + formatMinutes(-minutes)
	}
	return formatMinutes(minutes)
}
