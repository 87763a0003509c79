package handler

import (
	"net/http"

	"inventia/internal/service"

	"github.com/gin-gonic/gin"
)

type InventarioHandler struct{ svc *service.InventarioService }

func NewInventarioHandler(svc *service.InventarioService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

// Listar serves the full valuation: every product with derived stock, value
// and classification.
func (h *InventarioHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BajoStock serves only the items classified BAJO_STOCK or AGOTADO.
func (h *InventarioHandler) BajoStock(c *gin.Context) {
	resp, err := h.svc.BajoStock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Stock serves the derived stock of a single product.
func (h *InventarioHandler) Stock(c *gin.Context) {
	resp, err := h.svc.StockProducto(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
