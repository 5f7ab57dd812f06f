package infra

// pdf.go — Closure summary generation using go-pdf/fpdf.
// Renders an A4 report with:
//   - Venue header
//   - Operator and covered period
//   - Totals broken down by payment method
//   - Full transaction table (time, type, receipt, amount)

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/model"
)

// GeneradorCierres renders turn closures as PDF documents.
type GeneradorCierres struct{}

func NewGeneradorCierres() *GeneradorCierres { return &GeneradorCierres{} }

// CierrePDF renders the closure summary and returns the document bytes.
func (g *GeneradorCierres) CierrePDF(cierre *model.CierreTurno, transacciones []model.Transaccion) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Villanueva Pádel", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, "Cierre de Turno", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Turn info ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Operador: "+cierre.Operador, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5,
		fmt.Sprintf("Período: %s — %s",
			cierre.InicioEn.Format("02/01/2006 15:04"),
			cierre.FinEn.Format("02/01/2006 15:04")),
		"", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Transacciones: %d", cierre.CantidadTransacciones), "", 1, "L", false, 0, "")
	pdf.Ln(3)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(3)

	// ── Totals ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "Totales por método", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	filas := []struct {
		label string
		valor string
	}{
		{"Efectivo en caja", cierre.Totales.Caja.StringFixed(2)},
		{"Transferencia", cierre.Totales.Transferencia.StringFixed(2)},
		{"Expensa", cierre.Totales.Expensa.StringFixed(2)},
	}
	for _, f := range filas {
		pdf.CellFormat(contentW*0.6, 5, f.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.4, 5, "$"+f.valor, "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW*0.6, 6, "TOTAL GENERAL", "T", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.4, 6, "$"+cierre.Totales.General.StringFixed(2), "T", 1, "R", false, 0, "")
	pdf.Ln(5)

	// ── Transaction table ─────────────────────────────────────────────────────
	col1 := contentW * 0.18 // hora
	col2 := contentW * 0.24 // tipo
	col3 := contentW * 0.34 // recibo
	col4 := contentW * 0.24 // importe

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 5, "Hora", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Tipo", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 5, "Recibo", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 5, "Importe", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, t := range transacciones {
		pdf.CellFormat(col1, 5, model.FechaDe(t).Format("15:04"), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, tipoTransaccion(t), "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, model.ReciboDe(t), "", 0, "L", false, 0, "")
		pdf.CellFormat(col4, 5, "$"+model.ImporteDe(t).StringFixed(2), "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render: %w", err)
	}
	return buf.Bytes(), nil
}

func tipoTransaccion(t model.Transaccion) string {
	switch t.(type) {
	case *model.Venta:
		return "Venta Kiosco"
	case *model.FacturaCancha:
		return "Factura Cancha"
	case *model.Retiro:
		return "Retiro"
	case *model.CajaInicial:
		return "Caja Inicial"
	default:
		return "?"
	}
}
