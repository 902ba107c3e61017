package handler

import (
	"net/http"

	"tramitesbackend/internal/dto"
	"tramitesbackend/internal/middleware"
	"tramitesbackend/internal/model"
	"tramitesbackend/internal/service"

	"github.com/gin-gonic/gin"
)

// MovimientosHandler serves cargos no registrados, devoluciones and
// recepciones de pago; the three expose identical endpoints.
type MovimientosHandler[T model.Registro, PT interface {
	*T
	Movimiento() *model.MovimientoDinero
}] struct {
	crudHandler[T]
	svc *service.MovimientoService[T, PT]
}

func NewMovimientosHandler[T model.Registro, PT interface {
	*T
	Movimiento() *model.MovimientoDinero
}](svc *service.MovimientoService[T, PT]) *MovimientosHandler[T, PT] {
	return &MovimientosHandler[T, PT]{crudHandler: crudHandler[T]{svc: svc.CrudService}, svc: svc}
}

func (h *MovimientosHandler[T, PT]) Crear(c *gin.Context) {
	var req dto.MovimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	ent, err := h.svc.Crear(c.Request.Context(), middleware.UserUUID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ent)
}

func (h *MovimientosHandler[T, PT]) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarMovimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	ent, err := h.svc.Actualizar(c.Request.Context(), middleware.UserUUID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ent)
}
