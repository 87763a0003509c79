package handler

import (
	"context"
	"fmt"
	"time"

	"inventia/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct{ svc *service.ReporteService }

func NewReportesHandler(svc *service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// streamPDF runs the report builder and streams the result as a timestamped
// PDF download.
func (h *ReportesHandler) streamPDF(c *gin.Context, nombre string, build func(context.Context) ([]byte, error)) {
	data, err := build(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	filename := fmt.Sprintf("reporte_%s_%s.pdf", nombre, time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "application/pdf", data)
}

func (h *ReportesHandler) VentasPDF(c *gin.Context) {
	h.streamPDF(c, "ventas", h.svc.VentasPDF)
}

func (h *ReportesHandler) ComprasPDF(c *gin.Context) {
	h.streamPDF(c, "compras", h.svc.ComprasPDF)
}

func (h *ReportesHandler) ClientesPDF(c *gin.Context) {
	h.streamPDF(c, "clientes", h.svc.ClientesPDF)
}

func (h *ReportesHandler) ProveedoresPDF(c *gin.Context) {
	h.streamPDF(c, "proveedores", h.svc.ProveedoresPDF)
}

func (h *ReportesHandler) ProductosPDF(c *gin.Context) {
	h.streamPDF(c, "productos", h.svc.ProductosPDF)
}

// InventarioExcel streams the inventory valuation as an xlsx download.
func (h *ReportesHandler) InventarioExcel(c *gin.Context) {
	data, err := h.svc.InventarioExcel(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	filename := fmt.Sprintf("reporte_inventario_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
