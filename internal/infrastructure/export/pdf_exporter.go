package export

import (
	"io"
	"time"

	"repair_tracker/internal/domain/entities"

	"github.com/go-pdf/fpdf"
)

const (
	pdfTitle        = "Listado de Órdenes"
	pdfMarginLeft   = 20.0
	pdfMarginTop    = 20.0
	pdfLineHeight   = 8.0
	pdfCardHeight   = 80.0
	pdfCardGap      = 15.0
	pdfPageHeight   = 297.0
	pdfMarginBottom = 20.0
	pdfFontSize     = 12.0
)

// pdfCardLines lists, in print order, the columns shown on each order card.
var pdfCardLines = []string{
	"Marca", "Modelo", "Tipo de Reparación", "Costo",
	"Nombre del Cliente", "Teléfono del Cliente", "Dirección del Cliente",
}

// PDFExporter prints one fixed-layout card per order on A4 pages.
type PDFExporter struct {
	// CreationDate pins the document metadata; zero means now.
	CreationDate time.Time
	Compress     bool
}

func NewPDFExporter() *PDFExporter {
	return &PDFExporter{Compress: true}
}

func (e *PDFExporter) ContentType() string { return "application/pdf" }

func (e *PDFExporter) FileName() string { return "ordenes.pdf" }

func (e *PDFExporter) Export(w io.Writer, orders []entities.Order) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(e.Compress)
	pdf.SetTitle(pdfTitle, true)
	if !e.CreationDate.IsZero() {
		pdf.SetCreationDate(e.CreationDate)
	}
	pdf.SetFont("Helvetica", "", pdfFontSize)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	values := make(map[string]func(entities.Order) string, len(orderColumns))
	for _, c := range orderColumns {
		values[c.Label] = c.GetValue
	}

	pdf.AddPage()
	pdf.Text(pdfMarginLeft, pdfMarginTop, tr(pdfTitle))

	slot := 0
	for _, o := range orders {
		y := pdfMarginTop + float64(slot)*(pdfCardHeight+pdfCardGap)
		if y+pdfLineHeight*float64(len(pdfCardLines)+1) > pdfPageHeight-pdfMarginBottom {
			pdf.AddPage()
			slot = 0
			y = pdfMarginTop
		}

		pdf.Text(pdfMarginLeft, y+pdfLineHeight, tr("Orden #"+o.ID))
		for i, label := range pdfCardLines {
			pdf.Text(pdfMarginLeft, y+pdfLineHeight*float64(i+2), tr(label+": "+values[label](o)))
		}
		slot++
	}

	return pdf.Output(w)
}
