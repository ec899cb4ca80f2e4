package export

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"repair_tracker/internal/domain/entities"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleOrders(n int) []entities.Order {
	out := make([]entities.Order, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entities.Order{
			ID:              fmt.Sprintf("id-%d", i),
			OrderNumber:     fmt.Sprintf("num%06d", i),
			Brand:           "Samsung",
			Model:           "A52",
			RepairType:      "Pantalla",
			Cost:            1500.5,
			CustomerName:    "Ana López",
			CustomerPhone:   "5512345678",
			CustomerAddress: "Calle Ñandú 1",
			Status:          entities.OrderStatusEnProceso,
		})
	}
	return out
}

func TestNewExporter(t *testing.T) {
	e, err := NewExporter("PDF")
	require.NoError(t, err)
	require.Equal(t, "application/pdf", e.ContentType())

	e, err = NewExporter("")
	require.NoError(t, err)
	require.Equal(t, "ordenes.pdf", e.FileName())

	e, err = NewExporter("xlsx")
	require.NoError(t, err)
	require.Equal(t, "ordenes.xlsx", e.FileName())

	_, err = NewExporter("csv")
	require.Error(t, err)
}

func TestPDFExporter(t *testing.T) {
	e := &PDFExporter{CreationDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}

	var buf bytes.Buffer
	require.NoError(t, e.Export(&buf, sampleOrders(2)))
	out := buf.String()
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	require.Contains(t, out, "Orden #id-0")
	require.Contains(t, out, "Orden #id-1")
	require.Contains(t, out, "Marca: Samsung")
	require.Contains(t, out, "Costo: $1500.5")
	require.Contains(t, out, "/Count 1")
}

func TestPDFExporter_Paginates(t *testing.T) {
	e := &PDFExporter{}

	var buf bytes.Buffer
	require.NoError(t, e.Export(&buf, sampleOrders(7)))
	require.Contains(t, buf.String(), "/Count 3")
	require.Contains(t, buf.String(), "Orden #id-6")
}

func TestPDFExporter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPDFExporter().Export(&buf, nil))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestXLSXExporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewXLSXExporter().Export(&buf, sampleOrders(3)))

	wb, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows(xlsxSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	require.Equal(t, "Orden", rows[0][0])
	require.Equal(t, "Tipo de Reparación", rows[0][4])
	require.Equal(t, []string{"id-0", "num000000", "Samsung", "A52", "Pantalla", "$1500.5", "Ana López", "5512345678", "Calle Ñandú 1", "En proceso"}, rows[1])
	require.Equal(t, "id-2", rows[3][0])
}
