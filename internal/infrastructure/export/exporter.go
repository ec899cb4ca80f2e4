package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"repair_tracker/internal/domain/entities"
)

const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

// IExporter writes an order listing in one file format. Orders are written in
// the order given.
type IExporter interface {
	Export(w io.Writer, orders []entities.Order) error
	ContentType() string
	FileName() string
}

// NewExporter returns the exporter for format.
func NewExporter(format string) (IExporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatPDF:
		return NewPDFExporter(), nil
	case FormatXLSX:
		return NewXLSXExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// column is one labelled order attribute, shared by every format.
type column struct {
	Label    string
	GetValue func(o entities.Order) string
}

var orderColumns = []column{
	{Label: "Orden", GetValue: func(o entities.Order) string { return o.ID }},
	{Label: "Número de Orden", GetValue: func(o entities.Order) string { return o.OrderNumber }},
	{Label: "Marca", GetValue: func(o entities.Order) string { return o.Brand }},
	{Label: "Modelo", GetValue: func(o entities.Order) string { return o.Model }},
	{Label: "Tipo de Reparación", GetValue: func(o entities.Order) string { return o.RepairType }},
	{Label: "Costo", GetValue: func(o entities.Order) string { return formatCost(o.Cost) }},
	{Label: "Nombre del Cliente", GetValue: func(o entities.Order) string { return o.CustomerName }},
	{Label: "Teléfono del Cliente", GetValue: func(o entities.Order) string { return o.CustomerPhone }},
	{Label: "Dirección del Cliente", GetValue: func(o entities.Order) string { return o.CustomerAddress }},
	{Label: "Estado", GetValue: func(o entities.Order) string { return string(o.Status) }},
}

func formatCost(c float64) string {
	return "$" + strconv.FormatFloat(c, 'f', -1, 64)
}
