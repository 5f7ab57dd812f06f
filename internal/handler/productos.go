package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/dto"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/model"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/repository"
)

// ProductoHandler exposes the kiosk catalog. CRUD is thin enough that it
// talks to the repository directly, the way the turn and invoice flows
// talk to their services.
type ProductoHandler struct{ repo repository.ProductoRepository }

func NewProductoHandler(repo repository.ProductoRepository) *ProductoHandler {
	return &ProductoHandler{repo: repo}
}

// Crear godoc
// @Summary Crea un producto de kiosco
// @Tags productos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearProductoRequest true "Producto"
// @Success 201 {object} dto.ProductoResponse
// @Router /v1/productos [post]
func (h *ProductoHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p := &model.Producto{
		ID:          uuid.New(),
		Nombre:      req.Nombre,
		Categoria:   req.Categoria,
		Precio:      req.Precio,
		StockActual: req.StockActual,
		StockMinimo: req.StockMinimo,
		Activo:      true,
	}
	if err := h.repo.Create(c.Request.Context(), p); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductoResponse(p))
}

// Listar godoc
// @Summary Lista el catálogo de kiosco
// @Tags productos
// @Produce json
// @Security BearerAuth
// @Param todos query bool false "Incluir inactivos"
// @Success 200 {array} dto.ProductoResponse
// @Router /v1/productos [get]
func (h *ProductoHandler) Listar(c *gin.Context) {
	soloActivos := c.Query("todos") != "true"
	ps, err := h.repo.List(c.Request.Context(), soloActivos)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.ProductoResponse, 0, len(ps))
	for i := range ps {
		resp = append(resp, toProductoResponse(&ps[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary Actualiza un producto
// @Tags productos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de producto"
// @Param body body dto.ActualizarProductoRequest true "Cambios"
// @Success 200 {object} dto.ProductoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/productos/{id} [put]
func (h *ProductoHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "producto no encontrado"})
		return
	}
	if req.Nombre != "" {
		p.Nombre = req.Nombre
	}
	if req.Categoria != "" {
		p.Categoria = req.Categoria
	}
	if req.Precio != nil {
		p.Precio = *req.Precio
	}
	if req.StockMinimo != nil {
		p.StockMinimo = *req.StockMinimo
	}
	if req.Activo != nil {
		p.Activo = *req.Activo
	}
	if err := h.repo.Update(c.Request.Context(), p); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductoResponse(p))
}

// AjustarStock godoc
// @Summary Ajusta manualmente el stock de un producto
// @Tags productos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de producto"
// @Param body body dto.AjusteStockRequest true "Delta y motivo"
// @Success 200 {object} dto.ProductoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/productos/{id}/stock [post]
func (h *ProductoHandler) AjustarStock(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AjusteStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	ctx := c.Request.Context()
	p, err := h.repo.FindByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "producto no encontrado"})
		return
	}
	if err := h.repo.AjustarStock(ctx, id, req.Cantidad); err != nil {
		respondError(c, err)
		return
	}
	mov := &model.MovimientoStock{
		ID:            uuid.New(),
		ProductoID:    id,
		Tipo:          "ajuste_manual",
		Cantidad:      req.Cantidad,
		StockAnterior: p.StockActual,
		StockNuevo:    max(p.StockActual+req.Cantidad, 0),
		Motivo:        req.Motivo,
	}
	if err := h.repo.CreateMovimiento(ctx, mov); err != nil {
		respondError(c, err)
		return
	}
	p, err = h.repo.FindByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductoResponse(p))
}

// StockBajo godoc
// @Summary Lista productos con stock en o bajo el mínimo
// @Tags productos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StockBajoResponse
// @Router /v1/productos/stock-bajo [get]
func (h *ProductoHandler) StockBajo(c *gin.Context) {
	ps, err := h.repo.List(c.Request.Context(), true)
	if err != nil {
		respondError(c, err)
		return
	}
	bajos := make([]dto.ProductoResponse, 0)
	for i := range ps {
		if nivel := ps[i].Nivel(); nivel == model.StockVacio || nivel == model.StockBajo {
			bajos = append(bajos, toProductoResponse(&ps[i]))
		}
	}
	c.JSON(http.StatusOK, dto.StockBajoResponse{Productos: bajos, Total: len(bajos)})
}
