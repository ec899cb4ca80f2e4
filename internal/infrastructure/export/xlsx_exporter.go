package export

import (
	"fmt"
	"io"

	"repair_tracker/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const xlsxSheetName = "Órdenes"

// XLSXExporter writes the listing as a single-sheet workbook, one row per order.
type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter { return &XLSXExporter{} }

func (e *XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *XLSXExporter) FileName() string { return "ordenes.xlsx" }

func (e *XLSXExporter) Export(w io.Writer, orders []entities.Order) error {
	workbook := excelize.NewFile()
	defer workbook.Close()

	if err := workbook.SetSheetName("Sheet1", xlsxSheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := workbook.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	header := make([]interface{}, 0, len(orderColumns))
	for _, c := range orderColumns {
		header = append(header, c.Label)
	}
	if err := workbook.SetSheetRow(xlsxSheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(orderColumns))
	if err := workbook.SetCellStyle(xlsxSheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	if err := workbook.SetColWidth(xlsxSheetName, "A", lastCol, 22); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	for i, o := range orders {
		row := make([]interface{}, 0, len(orderColumns))
		for _, c := range orderColumns {
			row = append(row, c.GetValue(o))
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := workbook.SetSheetRow(xlsxSheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if _, err := workbook.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
