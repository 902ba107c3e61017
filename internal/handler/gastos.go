package handler

import (
	"net/http"

	"tramitesbackend/internal/dto"
	"tramitesbackend/internal/middleware"
	"tramitesbackend/internal/model"
	"tramitesbackend/internal/service"

	"github.com/gin-gonic/gin"
)

type GastosHandler struct {
	crudHandler[model.Gasto]
	svc *service.GastoService
}

func NewGastosHandler(svc *service.GastoService) *GastosHandler {
	return &GastosHandler{crudHandler: crudHandler[model.Gasto]{svc: svc.CrudService}, svc: svc}
}

func (h *GastosHandler) Crear(c *gin.Context) {
	var req dto.CrearGastoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	g, err := h.svc.Crear(c.Request.Context(), middleware.UserUUID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

func (h *GastosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarGastoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	g, err := h.svc.Actualizar(c.Request.Context(), middleware.UserUUID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// ─── Relaciones ──────────────────────────────────────────────────────────────

// ListarRelaciones GET /api/gastos/relaciones/list/
func (h *GastosHandler) ListarRelaciones(c *gin.Context) {
	opts, ok := parseListQuery(c)
	if !ok {
		return
	}
	rels, total, err := h.svc.ListarRelaciones(c.Request.Context(), opts)
	if err != nil {
		respondError(c, err)
		return
	}
	if rels == nil {
		rels = []model.GastoRelacion{}
	}
	c.JSON(http.StatusOK, paginar(c, total, opts.Page, opts.PageSize, rels))
}

// ObtenerRelacion GET /api/gastos/relaciones/:id/
func (h *GastosHandler) ObtenerRelacion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	rel, err := h.svc.ObtenerRelacion(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rel)
}

// CrearRelacion POST /api/gastos/relaciones/create/
func (h *GastosHandler) CrearRelacion(c *gin.Context) {
	var req dto.CrearGastoRelacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	rel, err := h.svc.CrearRelacion(c.Request.Context(), middleware.UserUUID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rel)
}

// ActualizarRelacion PUT /api/gastos/relaciones/:id/update/
func (h *GastosHandler) ActualizarRelacion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarGastoRelacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	rel, err := h.svc.ActualizarRelacion(c.Request.Context(), middleware.UserUUID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rel)
}

// EliminarRelacion DELETE /api/gastos/relaciones/:id/delete/
func (h *GastosHandler) EliminarRelacion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.EliminarRelacion(c.Request.Context(), middleware.UserUUID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// RestaurarRelacion POST /api/gastos/relaciones/:id/restore/
func (h *GastosHandler) RestaurarRelacion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	rel, err := h.svc.RestaurarRelacion(c.Request.Context(), middleware.UserUUID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rel)
}

// EliminarRelacionDefinitivo DELETE /api/gastos/relaciones/:id/hard-delete/
func (h *GastosHandler) EliminarRelacionDefinitivo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.EliminarRelacionDefinitivo(c.Request.Context(), middleware.UserUUID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// HistorialRelacion GET /api/gastos/relaciones/:id/history/
func (h *GastosHandler) HistorialRelacion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	page, pageSize := parsePagina(c)
	entradas, total, err := h.svc.HistorialRelacion(c.Request.Context(), id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	if entradas == nil {
		entradas = []model.Historial{}
	}
	c.JSON(http.StatusOK, paginar(c, total, page, pageSize, entradas))
}
