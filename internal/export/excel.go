package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Transactions"

// WriteExcel renders the report as an xlsx workbook with one sheet.
func WriteExcel(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for idx, row := range rows {
		n := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", n), row.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", n), row.Type)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", n), row.Customer)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", n), row.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", n), row.Fee)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", n), row.FromAccount)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", n), row.ToAccount)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", n), row.Description)
	}

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 18)
	f.SetColWidth(sheetName, "C", "C", 20)
	f.SetColWidth(sheetName, "D", "E", 12)
	f.SetColWidth(sheetName, "F", "G", 18)
	f.SetColWidth(sheetName, "H", "H", 30)

	return f.Write(w)
}
