package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/apierror"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/dto"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/service"
)

type FacturaHandler struct{ svc service.FacturaService }

func NewFacturaHandler(svc service.FacturaService) *FacturaHandler {
	return &FacturaHandler{svc: svc}
}

// Abrir godoc
// @Summary Abre una factura de cancha
// @Tags facturas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.AbrirFacturaRequest true "Cancha y cliente"
// @Success 201 {object} dto.FacturaResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/facturas [post]
func (h *FacturaHandler) Abrir(c *gin.Context) {
	var req dto.AbrirFacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	f, err := h.svc.Abrir(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFacturaResponse(f))
}

// Listar godoc
// @Summary Lista las facturas abiertas
// @Tags facturas
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.FacturaResponse
// @Router /v1/facturas [get]
func (h *FacturaHandler) Listar(c *gin.Context) {
	fs, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.FacturaResponse, 0, len(fs))
	for i := range fs {
		resp = append(resp, toFacturaResponse(&fs[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary Devuelve una factura abierta
// @Tags facturas
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de factura"
// @Success 200 {object} dto.FacturaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/facturas/{id} [get]
func (h *FacturaHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	f, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFacturaResponse(f))
}

// AgregarKiosco godoc
// @Summary Agrega un producto de kiosco a la factura
// @Tags facturas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de factura"
// @Param body body dto.AgregarKioscoRequest true "Producto y cantidad"
// @Success 200 {object} dto.FacturaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/facturas/{id}/items/kiosco [post]
func (h *FacturaHandler) AgregarKiosco(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AgregarKioscoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	f, err := h.svc.AgregarKiosco(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFacturaResponse(f))
}

// AgregarPersonalizado godoc
// @Summary Agrega un cargo personalizado a la factura
// @Tags facturas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de factura"
// @Param body body dto.AgregarPersonalizadoRequest true "Descripción, precio y cantidad"
// @Success 200 {object} dto.FacturaResponse
// @Router /v1/facturas/{id}/items/personalizado [post]
func (h *FacturaHandler) AgregarPersonalizado(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AgregarPersonalizadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	f, err := h.svc.AgregarPersonalizado(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFacturaResponse(f))
}

// AgregarServicio godoc
// @Summary Agrega un servicio de cancha a la factura
// @Tags facturas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de factura"
// @Param body body dto.AgregarServicioRequest true "Servicio, cantidad y precio opcional"
// @Success 200 {object} dto.FacturaResponse
// @Router /v1/facturas/{id}/items/servicio [post]
func (h *FacturaHandler) AgregarServicio(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AgregarServicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	f, err := h.svc.AgregarServicio(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFacturaResponse(f))
}

// EditarItem godoc
// @Summary Edita cantidad o precio de un ítem
// @Tags facturas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de factura"
// @Param itemId path string true "ID de ítem"
// @Param body body dto.EditarItemRequest true "Cambios"
// @Success 200 {object} dto.FacturaResponse
// @Failure 422 {object} apierror.APIError
// @Router /v1/facturas/{id}/items/{itemId} [put]
func (h *FacturaHandler) EditarItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}
	var req dto.EditarItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	f, err := h.svc.EditarItem(c.Request.Context(), id, itemID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFacturaResponse(f))
}

// QuitarItem godoc
// @Summary Quita un ítem de la factura
// @Tags facturas
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de factura"
// @Param itemId path string true "ID de ítem"
// @Success 200 {object} dto.FacturaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/facturas/{id}/items/{itemId} [delete]
func (h *FacturaHandler) QuitarItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}
	f, err := h.svc.QuitarItem(c.Request.Context(), id, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFacturaResponse(f))
}

// Finalizar godoc
// @Summary Cobra la factura contra el turno activo y la elimina
// @Tags facturas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de factura"
// @Param body body dto.FinalizarFacturaRequest true "Asignación de pago"
// @Success 200 {object} dto.FacturaFinalizadaResponse
// @Failure 422 {object} apierror.APIError
// @Router /v1/facturas/{id}/finalizar [post]
func (h *FacturaHandler) Finalizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.FinalizarFacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cobro, turno, err := h.svc.Finalizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FacturaFinalizadaResponse{
		Recibo:  cobro.NumeroRecibo,
		Total:   cobro.Total,
		Metodo:  string(cobro.Pago.Metodo()),
		Totales: toTotalesResponse(turno.Totales),
	})
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, false
	}
	return id, true
}
