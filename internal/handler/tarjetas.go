package handler

import (
	"net/http"

	"tramitesbackend/internal/dto"
	"tramitesbackend/internal/middleware"
	"tramitesbackend/internal/model"
	"tramitesbackend/internal/service"

	"github.com/gin-gonic/gin"
)

type TarjetasHandler struct {
	crudHandler[model.Tarjeta]
	svc *service.TarjetaService
}

func NewTarjetasHandler(svc *service.TarjetaService) *TarjetasHandler {
	return &TarjetasHandler{crudHandler: crudHandler[model.Tarjeta]{svc: svc.CrudService}, svc: svc}
}

// Crear POST /api/tarjetas/create/
func (h *TarjetasHandler) Crear(c *gin.Context) {
	var req dto.CrearTarjetaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tar, err := h.svc.Crear(c.Request.Context(), middleware.UserUUID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tar)
}

// Actualizar PUT /api/tarjetas/:id/update/
func (h *TarjetasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarTarjetaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tar, err := h.svc.Actualizar(c.Request.Context(), middleware.UserUUID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tar)
}
