package infra

// pdf.go — quote PDF generation using go-pdf/fpdf. Renders an A4 document
// with the client and vehicle data, the quoted amounts and the payments
// registered so far. The document is returned as bytes so the handler can
// stream it or the mailer can attach it.

import (
	"bytes"
	"fmt"

	"tramitesbackend/internal/model"

	"github.com/go-pdf/fpdf"
)

type PDFCotizaciones struct{}

func NewPDFCotizaciones() *PDFCotizaciones { return &PDFCotizaciones{} }

func (g *PDFCotizaciones) GenerarCotizacion(cot *model.Cotizador, pagos []model.CotizadorPago) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, tr("Cotización de Trámite"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, cot.CreatedAt.Format("02/01/2006"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Cliente ──────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Datos del cliente", "B", 1, "L", false, 0, "")
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "", 10)
	fila := func(etiqueta, valor string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW*0.3, 6, tr(etiqueta), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(contentW*0.7, 6, tr(valor), "", 1, "L", false, 0, "")
	}
	fila("Nombre completo", cot.NombreCompleto)
	fila("Documento", fmt.Sprintf("%s %s", cot.TipoDocumento, cot.NumeroDocumento))
	fila("Teléfono", cot.Telefono)
	fila("Correo", cot.Correo)
	fila("Dirección", cot.Direccion)
	pdf.Ln(3)

	// ── Vehículo ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, tr("Datos del vehículo"), "B", 1, "L", false, 0, "")
	pdf.Ln(1)
	fila("Placa", cot.Placa)
	fila("Cilindraje", cot.Clindraje)
	fila("Modelo", cot.Modelo)
	fila("Chasis", cot.Chasis)
	pdf.Ln(3)

	// ── Cotización ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, tr("Cotización"), "B", 1, "L", false, 0, "")
	pdf.Ln(1)
	fila("Descripción", cot.Descripcion)
	fila("Precio", "$"+cot.PrecioLay.StringFixed(2))
	fila("Comisión", "$"+cot.Comision.StringFixed(2))
	pdf.Ln(3)

	// ── Pagos ────────────────────────────────────────────────────────────────
	if len(pagos) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW, 7, "Pagos registrados", "B", 1, "L", false, 0, "")
		pdf.Ln(1)

		col1 := contentW * 0.34
		col2 := contentW * 0.33
		col3 := contentW * 0.33

		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(col1, 6, "Fecha", "B", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, "Precio", "B", 0, "R", false, 0, "")
		pdf.CellFormat(col3, 6, tr("Comisión"), "B", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		for _, pago := range pagos {
			pdf.CellFormat(col1, 6, pago.FechaPago.Format("02/01/2006"), "", 0, "L", false, 0, "")
			pdf.CellFormat(col2, 6, "$"+pago.PrecioLay.StringFixed(2), "", 0, "R", false, 0, "")
			pdf.CellFormat(col3, 6, "$"+pago.Comision.StringFixed(2), "", 1, "R", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	return buf.Bytes(), nil
}
