package handler

import (
	"net/http"

	"tramitesbackend/internal/dto"
	"tramitesbackend/internal/middleware"
	"tramitesbackend/internal/model"
	"tramitesbackend/internal/service"

	"github.com/gin-gonic/gin"
)

type AjustesHandler struct {
	crudHandler[model.AjusteDeSaldo]
	svc *service.AjusteService
}

func NewAjustesHandler(svc *service.AjusteService) *AjustesHandler {
	return &AjustesHandler{crudHandler: crudHandler[model.AjusteDeSaldo]{svc: svc.CrudService}, svc: svc}
}

func (h *AjustesHandler) Crear(c *gin.Context) {
	var req dto.CrearAjusteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	aj, err := h.svc.Crear(c.Request.Context(), middleware.UserUUID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, aj)
}

func (h *AjustesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarAjusteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	aj, err := h.svc.Actualizar(c.Request.Context(), middleware.UserUUID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, aj)
}
