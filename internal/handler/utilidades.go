package handler

import (
	"net/http"

	"tramitesbackend/internal/dto"
	"tramitesbackend/internal/middleware"
	"tramitesbackend/internal/model"
	"tramitesbackend/internal/service"

	"github.com/gin-gonic/gin"
)

type UtilidadesHandler struct {
	crudHandler[model.UtilidadOcasional]
	svc *service.UtilidadService
}

func NewUtilidadesHandler(svc *service.UtilidadService) *UtilidadesHandler {
	return &UtilidadesHandler{crudHandler: crudHandler[model.UtilidadOcasional]{svc: svc.CrudService}, svc: svc}
}

func (h *UtilidadesHandler) Crear(c *gin.Context) {
	var req dto.CrearUtilidadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	ut, err := h.svc.Crear(c.Request.Context(), middleware.UserUUID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ut)
}

func (h *UtilidadesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarUtilidadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	ut, err := h.svc.Actualizar(c.Request.Context(), middleware.UserUUID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ut)
}
