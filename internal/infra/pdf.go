package infra

// pdf.go — tabular report rendering with go-pdf/fpdf. A4 portrait: title,
// generation timestamp, optional stats line, one table row per record and an
// optional bold closing row. Rendered fully in memory; the handlers stream
// the bytes as downloads.

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// TablaPDF describes one tabular report. Anchos are column widths in mm
// (A4 content width is 190mm); Alinear holds one of "L", "C", "R" per column.
type TablaPDF struct {
	Titulo    string
	Resumen   string // optional stats line under the title
	Cabeceras []string
	Anchos    []float64
	Alinear   []string
	Filas     [][]string

	// When TotalEtiqueta is non-empty a bold closing row is drawn: the label
	// spans every column but the last, TotalValor fills the last.
	TotalEtiqueta string
	TotalValor    string
}

// GenerarReportePDF renders the table as a PDF document.
func GenerarReportePDF(t TablaPDF) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, t.Titulo, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 6, "Generado: "+time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	if t.Resumen != "" {
		pdf.CellFormat(contentW, 6, t.Resumen, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	// ── Table header ──────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(52, 73, 94)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range t.Cabeceras {
		pdf.CellFormat(t.Anchos[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// ── Rows ──────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for _, fila := range t.Filas {
		for i, celda := range fila {
			salto := 0
			if i == len(fila)-1 {
				salto = 1
			}
			pdf.CellFormat(t.Anchos[i], 6, celda, "1", salto, t.Alinear[i], false, 0, "")
		}
	}

	// ── Closing total ─────────────────────────────────────────────────────────
	if t.TotalEtiqueta != "" {
		var resto float64
		for _, w := range t.Anchos[:len(t.Anchos)-1] {
			resto += w
		}
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(resto, 7, t.TotalEtiqueta, "1", 0, "R", false, 0, "")
		pdf.CellFormat(t.Anchos[len(t.Anchos)-1], 7, t.TotalValor, "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render: %w", err)
	}
	return buf.Bytes(), nil
}

// Truncar shortens cell text so long values do not bleed into the next
// column.
func Truncar(s string, max int) string {
	if len(s) > max {
		return s[:max-1] + "…"
	}
	return s
}
