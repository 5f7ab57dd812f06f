package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/apierror"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/dto"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/service"
)

type CierreHandler struct{ svc service.CierreService }

func NewCierreHandler(svc service.CierreService) *CierreHandler { return &CierreHandler{svc: svc} }

// Listar godoc
// @Summary Lista los cierres archivados, más recientes primero
// @Tags cierres
// @Produce json
// @Security BearerAuth
// @Param desde query string false "YYYY-MM-DD"
// @Param hasta query string false "YYYY-MM-DD"
// @Param page query int false "Página"
// @Param limit query int false "Tamaño de página"
// @Success 200 {object} dto.CierreListResponse
// @Router /v1/cierres [get]
func (h *CierreHandler) Listar(c *gin.Context) {
	var filter dto.CierreFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("filtros inválidos: "+err.Error()))
		return
	}
	if err := validate.Struct(&filter); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New("filtros inválidos"))
		return
	}

	cierres, total, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	data := make([]dto.CierreResponse, 0, len(cierres))
	for i := range cierres {
		data = append(data, toCierreResponse(&cierres[i]))
	}
	c.JSON(http.StatusOK, dto.CierreListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	})
}

// Obtener godoc
// @Summary Devuelve un cierre archivado
// @Tags cierres
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de cierre"
// @Success 200 {object} dto.CierreResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/cierres/{id} [get]
func (h *CierreHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	cierre, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCierreResponse(cierre))
}

// ExportarCSV godoc
// @Summary Exporta todos los cierres como CSV
// @Tags cierres
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV"
// @Router /v1/cierres/csv [get]
func (h *CierreHandler) ExportarCSV(c *gin.Context) {
	csvBytes, err := h.svc.ExportarCSV(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="cierres.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", csvBytes)
}

// DescargarPDF godoc
// @Summary Descarga el resumen PDF de un cierre
// @Tags cierres
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "ID de cierre"
// @Success 200 {string} string "PDF"
// @Failure 404 {object} apierror.APIError
// @Router /v1/cierres/{id}/pdf [get]
func (h *CierreHandler) DescargarPDF(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	pdf, err := h.svc.GenerarPDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="cierre.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Enviar godoc
// @Summary Encola el envío del cierre por email
// @Tags cierres
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de cierre"
// @Param body body dto.EnviarCierreRequest true "Destinatario"
// @Success 202 {object} map[string]string
// @Failure 404 {object} apierror.APIError
// @Router /v1/cierres/{id}/email [post]
func (h *CierreHandler) Enviar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.EnviarCierreRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.EnviarPorEmail(c.Request.Context(), id, req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "encolado"})
}
