package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/dto"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/service"
)

type TurnoHandler struct {
	svc     service.TurnoService
	cierres service.CierreService
}

func NewTurnoHandler(svc service.TurnoService, cierres service.CierreService) *TurnoHandler {
	return &TurnoHandler{svc: svc, cierres: cierres}
}

// Abrir godoc
// @Summary Abre un turno de caja
// @Tags turno
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.AbrirTurnoRequest true "Datos de apertura"
// @Success 201 {object} dto.TurnoResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/turno/abrir [post]
func (h *TurnoHandler) Abrir(c *gin.Context) {
	var req dto.AbrirTurnoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	turno, err := h.svc.Abrir(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTurnoResponse(turno))
}

// Activo godoc
// @Summary Devuelve el turno activo con su log de transacciones
// @Tags turno
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TurnoResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/turno [get]
func (h *TurnoHandler) Activo(c *gin.Context) {
	turno, err := h.svc.Activo(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTurnoResponse(turno))
}

// Retirar godoc
// @Summary Registra un retiro de efectivo autorizado por clave
// @Tags turno
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.RetiroRequest true "Datos del retiro"
// @Success 200 {object} dto.RetiroResponse
// @Failure 403 {object} apierror.APIError
// @Failure 422 {object} apierror.APIError
// @Router /v1/turno/retiro [post]
func (h *TurnoHandler) Retirar(c *gin.Context) {
	var req dto.RetiroRequest
	if !bindAndValidate(c, &req) {
		return
	}
	retiro, turno, err := h.svc.Retirar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RetiroResponse{
		ID:       retiro.ID.String(),
		RetiroID: retiro.RetiroID,
		Recibo:   retiro.NumeroRecibo,
		Monto:    retiro.Monto,
		Operador: retiro.Operador,
		Motivo:   retiro.Motivo,
		Fecha:    retiro.CreadaEn.Format(time.RFC3339),
		Totales:  toTotalesResponse(turno.Totales),
	})
}

// Cerrar godoc
// @Summary Cierra el turno activo y archiva el cierre
// @Tags turno
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CerrarTurnoRequest true "Operador que cierra"
// @Success 200 {object} dto.CierreResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/turno/cerrar [post]
func (h *TurnoHandler) Cerrar(c *gin.Context) {
	var req dto.CerrarTurnoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cierre, err := h.svc.Cerrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCierreResponse(cierre))
}

// ExportarCSV godoc
// @Summary Exporta el log del turno activo como CSV
// @Tags turno
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV"
// @Failure 409 {object} apierror.APIError
// @Router /v1/turno/csv [get]
func (h *TurnoHandler) ExportarCSV(c *gin.Context) {
	turno, err := h.svc.Activo(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	csvBytes, err := h.cierres.ExportarTurnoCSV(c.Request.Context(), turno.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	nombre := "turno_" + turno.AbiertoEn.Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+nombre+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", csvBytes)
}
