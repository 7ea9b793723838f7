package reports

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportDashboardExcel renders the year-filtered active-project table into a
// spreadsheet and returns the workbook for streaming.
func ExportDashboardExcel(ctx context.Context, resp *DashboardResponse) (*excelize.File, error) {

	f := excelize.NewFile()
	sheetName := "Sheet1"
	_, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}

	// Add headers
	f.SetCellValue(sheetName, "A1", "Project")
	f.SetCellValue(sheetName, "B1", "Customer")
	f.SetCellValue(sheetName, "C1", "Stage")
	f.SetCellValue(sheetName, "D1", "Proposal")
	f.SetCellValue(sheetName, "E1", "Paid")
	f.SetCellValue(sheetName, "F1", "Balance")
	f.SetCellValue(sheetName, "G1", "KWH")
	f.SetCellValue(sheetName, "H1", "Date")
	f.SetCellValue(sheetName, "I1", "Duration")

	// Add data
	for i, row := range resp.Projects {
		r := fmt.Sprint(i + 2)
		f.SetCellValue(sheetName, "A"+r, row.Name)
		f.SetCellValue(sheetName, "B"+r, row.CustomerName)
		f.SetCellValue(sheetName, "C"+r, row.CurrentStage)
		f.SetCellValue(sheetName, "D"+r, row.ProposalAmount.InexactFloat64())
		f.SetCellValue(sheetName, "E"+r, row.PaidAmount.InexactFloat64())
		f.SetCellValue(sheetName, "F"+r, row.BalanceAmount.InexactFloat64())
		f.SetCellValue(sheetName, "G"+r, row.Kwh.InexactFloat64())
		f.SetCellValue(sheetName, "H"+r, row.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, "I"+r, row.Duration)
	}

	return f, nil
}
