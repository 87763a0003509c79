package infra

// excel.go — inventory valuation workbook rendered with excelize.
// One sheet, one row per product, money columns with a currency format,
// rows below the stock threshold highlighted, TOTAL row at the bottom.

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// FilaInventarioExcel is one product row of the valuation sheet.
type FilaInventarioExcel struct {
	ID           string
	Nombre       string
	Descripcion  string
	PrecioCompra decimal.Decimal
	PrecioVenta  decimal.Decimal
	Stock        int
	Valor        decimal.Decimal
	Estado       string
}

const hojaInventario = "Inventario"

// GenerarReporteInventarioExcel renders the inventory valuation workbook.
func GenerarReporteInventarioExcel(filas []FilaInventarioExcel, valorTotal decimal.Decimal) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", hojaInventario)

	formatoMoneda := "$#,##0.00"

	estiloCabecera, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"305496"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo cabecera: %w", err)
	}
	estiloMoneda, err := f.NewStyle(&excelize.Style{CustomNumFmt: &formatoMoneda})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo moneda: %w", err)
	}
	// highlight for AGOTADO / BAJO_STOCK rows
	estiloAlerta, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "9C0006"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFC7CE"}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo alerta: %w", err)
	}
	estiloAlertaMoneda, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Color: "9C0006"},
		Fill:         excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFC7CE"}},
		CustomNumFmt: &formatoMoneda,
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo alerta moneda: %w", err)
	}
	estiloTotal, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &formatoMoneda,
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo total: %w", err)
	}

	cabeceras := []string{"ID", "Producto", "Descripción", "Precio Compra", "Precio Venta", "Stock", "Valor en Inventario", "Estado"}
	for i, h := range cabeceras {
		celda, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(hojaInventario, celda, h); err != nil {
			return nil, fmt.Errorf("excel: cabecera: %w", err)
		}
	}
	if err := f.SetCellStyle(hojaInventario, "A1", "H1", estiloCabecera); err != nil {
		return nil, fmt.Errorf("excel: cabecera: %w", err)
	}

	fila := 2
	for _, item := range filas {
		f.SetCellValue(hojaInventario, fmt.Sprintf("A%d", fila), item.ID)
		f.SetCellValue(hojaInventario, fmt.Sprintf("B%d", fila), item.Nombre)
		f.SetCellValue(hojaInventario, fmt.Sprintf("C%d", fila), item.Descripcion)
		f.SetCellValue(hojaInventario, fmt.Sprintf("D%d", fila), item.PrecioCompra.InexactFloat64())
		f.SetCellValue(hojaInventario, fmt.Sprintf("E%d", fila), item.PrecioVenta.InexactFloat64())
		f.SetCellValue(hojaInventario, fmt.Sprintf("F%d", fila), item.Stock)
		f.SetCellValue(hojaInventario, fmt.Sprintf("G%d", fila), item.Valor.InexactFloat64())
		f.SetCellValue(hojaInventario, fmt.Sprintf("H%d", fila), item.Estado)

		if item.Estado != "NORMAL" {
			f.SetCellStyle(hojaInventario, fmt.Sprintf("A%d", fila), fmt.Sprintf("C%d", fila), estiloAlerta)
			f.SetCellStyle(hojaInventario, fmt.Sprintf("F%d", fila), fmt.Sprintf("F%d", fila), estiloAlerta)
			f.SetCellStyle(hojaInventario, fmt.Sprintf("H%d", fila), fmt.Sprintf("H%d", fila), estiloAlerta)
			f.SetCellStyle(hojaInventario, fmt.Sprintf("D%d", fila), fmt.Sprintf("E%d", fila), estiloAlertaMoneda)
			f.SetCellStyle(hojaInventario, fmt.Sprintf("G%d", fila), fmt.Sprintf("G%d", fila), estiloAlertaMoneda)
		} else {
			f.SetCellStyle(hojaInventario, fmt.Sprintf("D%d", fila), fmt.Sprintf("E%d", fila), estiloMoneda)
			f.SetCellStyle(hojaInventario, fmt.Sprintf("G%d", fila), fmt.Sprintf("G%d", fila), estiloMoneda)
		}
		fila++
	}

	// ── TOTAL row ─────────────────────────────────────────────────────────────
	f.SetCellValue(hojaInventario, fmt.Sprintf("F%d", fila), "TOTAL:")
	f.SetCellValue(hojaInventario, fmt.Sprintf("G%d", fila), valorTotal.InexactFloat64())
	f.SetCellStyle(hojaInventario, fmt.Sprintf("F%d", fila), fmt.Sprintf("G%d", fila), estiloTotal)

	anchos := map[string]float64{"A": 8, "B": 25, "C": 30, "D": 15, "E": 15, "F": 10, "G": 18, "H": 15}
	for col, ancho := range anchos {
		if err := f.SetColWidth(hojaInventario, col, col, ancho); err != nil {
			return nil, fmt.Errorf("excel: ancho de columna: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: render: %w", err)
	}
	return buf.Bytes(), nil
}
