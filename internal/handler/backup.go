package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/apierror"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/dto"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/service"
)

type BackupHandler struct{ svc service.BackupService }

func NewBackupHandler(svc service.BackupService) *BackupHandler { return &BackupHandler{svc: svc} }

// Exportar godoc
// @Summary Descarga un snapshot completo del sistema
// @Tags backup
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Snapshot
// @Router /v1/backup/exportar [get]
func (h *BackupHandler) Exportar(c *gin.Context) {
	snap, err := h.svc.Exportar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="backup.json"`)
	c.JSON(http.StatusOK, snap)
}

// Importar godoc
// @Summary Restaura el sistema desde un snapshot. Destruye el estado actual.
// @Tags backup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.Snapshot true "Snapshot"
// @Success 200 {object} map[string]string
// @Failure 422 {object} apierror.APIError
// @Router /v1/backup/importar [post]
func (h *BackupHandler) Importar(c *gin.Context) {
	var snap dto.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return
	}
	if err := h.svc.Importar(c.Request.Context(), &snap); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "restaurado"})
}

// Programar godoc
// @Summary Encola un backup a la nube de inmediato
// @Tags backup
// @Produce json
// @Security BearerAuth
// @Success 202 {object} map[string]string
// @Router /v1/backup/programar [post]
func (h *BackupHandler) Programar(c *gin.Context) {
	if err := h.svc.Programar(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "encolado"})
}

// Estado godoc
// @Summary Estado del backup automático
// @Tags backup
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.BackupStatusResponse
// @Router /v1/backup/estado [get]
func (h *BackupHandler) Estado(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Estado())
}
