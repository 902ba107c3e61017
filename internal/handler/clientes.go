package handler

import (
	"net/http"

	"tramitesbackend/internal/dto"
	"tramitesbackend/internal/middleware"
	"tramitesbackend/internal/model"
	"tramitesbackend/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientesHandler struct {
	crudHandler[model.Cliente]
	svc *service.ClienteService
}

func NewClientesHandler(svc *service.ClienteService) *ClientesHandler {
	return &ClientesHandler{crudHandler: crudHandler[model.Cliente]{svc: svc.CrudService}, svc: svc}
}

// Crear godoc
// @Summary      Crear cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearClienteRequest true "Cliente"
// @Success      201 {object} model.Cliente
// @Failure      400 {object} apierror.Envelope
// @Router       /api/clientes/create/ [post]
func (h *ClientesHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cli, err := h.svc.Crear(c.Request.Context(), middleware.UserUUID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cli)
}

// Actualizar godoc
// @Summary      Actualizar cliente (parcial)
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        id   path string true "ID"
// @Param        body body dto.ActualizarClienteRequest true "Campos a cambiar"
// @Success      200 {object} model.Cliente
// @Failure      404 {object} apierror.Envelope
// @Router       /api/clientes/{id}/update/ [put]
func (h *ClientesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cli, err := h.svc.Actualizar(c.Request.Context(), middleware.UserUUID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cli)
}

// ─── Precios ─────────────────────────────────────────────────────────────────

// ListarPrecios GET /api/clientes/:id/precios/
func (h *ClientesHandler) ListarPrecios(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	opts, ok := parseListQuery(c)
	if !ok {
		return
	}
	precios, total, err := h.svc.ListarPrecios(c.Request.Context(), id, opts)
	if err != nil {
		respondError(c, err)
		return
	}
	if precios == nil {
		precios = []model.PrecioCliente{}
	}
	c.JSON(http.StatusOK, paginar(c, total, opts.Page, opts.PageSize, precios))
}

// CrearPrecio POST /api/clientes/:id/precios/create/
func (h *ClientesHandler) CrearPrecio(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CrearPrecioClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	precio, err := h.svc.CrearPrecio(c.Request.Context(), middleware.UserUUID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, precio)
}

// ActualizarPrecio PUT /api/clientes/:id/precios/:precio_id/update/
func (h *ClientesHandler) ActualizarPrecio(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	precioID, ok := parseID(c, "precio_id")
	if !ok {
		return
	}
	var req dto.ActualizarPrecioClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	precio, err := h.svc.ActualizarPrecio(c.Request.Context(), middleware.UserUUID(c), id, precioID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, precio)
}

// EliminarPrecio DELETE /api/clientes/:id/precios/:precio_id/delete/
func (h *ClientesHandler) EliminarPrecio(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	precioID, ok := parseID(c, "precio_id")
	if !ok {
		return
	}
	if err := h.svc.EliminarPrecio(c.Request.Context(), middleware.UserUUID(c), id, precioID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
