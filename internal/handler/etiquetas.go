package handler

import (
	"net/http"

	"tramitesbackend/internal/dto"
	"tramitesbackend/internal/middleware"
	"tramitesbackend/internal/model"
	"tramitesbackend/internal/service"

	"github.com/gin-gonic/gin"
)

type EtiquetasHandler struct {
	crudHandler[model.Etiqueta]
	svc *service.EtiquetaService
}

func NewEtiquetasHandler(svc *service.EtiquetaService) *EtiquetasHandler {
	return &EtiquetasHandler{crudHandler: crudHandler[model.Etiqueta]{svc: svc.CrudService}, svc: svc}
}

func (h *EtiquetasHandler) Crear(c *gin.Context) {
	var req dto.CrearEtiquetaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	et, err := h.svc.Crear(c.Request.Context(), middleware.UserUUID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, et)
}

func (h *EtiquetasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarEtiquetaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	et, err := h.svc.Actualizar(c.Request.Context(), middleware.UserUUID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, et)
}
