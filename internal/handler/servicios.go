package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/dto"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/model"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/repository"
)

type ServicioHandler struct{ repo repository.ServicioRepository }

func NewServicioHandler(repo repository.ServicioRepository) *ServicioHandler {
	return &ServicioHandler{repo: repo}
}

// Crear godoc
// @Summary Crea un servicio de cancha
// @Tags servicios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearServicioRequest true "Servicio"
// @Success 201 {object} dto.ServicioResponse
// @Router /v1/servicios [post]
func (h *ServicioHandler) Crear(c *gin.Context) {
	var req dto.CrearServicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	s := &model.ServicioCancha{
		ID:        uuid.New(),
		Nombre:    req.Nombre,
		Categoria: req.Categoria,
		Precio:    req.Precio,
		Activo:    true,
	}
	if err := h.repo.Create(c.Request.Context(), s); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toServicioResponse(s))
}

// Listar godoc
// @Summary Lista los servicios de cancha
// @Tags servicios
// @Produce json
// @Security BearerAuth
// @Param todos query bool false "Incluir inactivos"
// @Success 200 {array} dto.ServicioResponse
// @Router /v1/servicios [get]
func (h *ServicioHandler) Listar(c *gin.Context) {
	soloActivos := c.Query("todos") != "true"
	ss, err := h.repo.List(c.Request.Context(), soloActivos)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.ServicioResponse, 0, len(ss))
	for i := range ss {
		resp = append(resp, toServicioResponse(&ss[i]))
	}
	c.JSON(http.StatusOK, resp)
}
