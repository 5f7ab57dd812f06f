package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/dto"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/service"
)

type VentaHandler struct{ svc service.VentaService }

func NewVentaHandler(svc service.VentaService) *VentaHandler { return &VentaHandler{svc: svc} }

// Registrar godoc
// @Summary Registra una venta directa de kiosco contra el turno activo
// @Tags ventas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.RegistrarVentaRequest true "Ítems y asignación de pago"
// @Success 201 {object} dto.VentaResponse
// @Failure 409 {object} apierror.APIError
// @Failure 422 {object} apierror.APIError
// @Router /v1/ventas [post]
func (h *VentaHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	venta, turno, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]dto.ItemResponse, 0, len(venta.Items))
	for _, it := range venta.Items {
		items = append(items, toItemResponse(it))
	}
	c.JSON(http.StatusCreated, dto.VentaResponse{
		ID:      venta.ID.String(),
		Recibo:  venta.NumeroRecibo,
		Items:   items,
		Total:   venta.Total,
		Metodo:  string(venta.Pago.Metodo()),
		Cliente: venta.Cliente,
		Fecha:   venta.CreadaEn.Format(time.RFC3339),
		Totales: toTotalesResponse(turno.Totales),
	})
}
