package handler

import (
	"fmt"
	"net/http"

	"tramitesbackend/internal/dto"
	"tramitesbackend/internal/middleware"
	"tramitesbackend/internal/model"
	"tramitesbackend/internal/service"

	"github.com/gin-gonic/gin"
)

type CotizadorHandler struct {
	crudHandler[model.Cotizador]
	svc *service.CotizadorService
}

func NewCotizadorHandler(svc *service.CotizadorService) *CotizadorHandler {
	return &CotizadorHandler{crudHandler: crudHandler[model.Cotizador]{svc: svc.CrudService}, svc: svc}
}

// Crear godoc
// @Summary      Crear cotización
// @Tags         cotizador
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearCotizadorRequest true "Cotización"
// @Success      201 {object} model.Cotizador
// @Failure      400 {object} apierror.Envelope
// @Router       /api/cotizador/create/ [post]
func (h *CotizadorHandler) Crear(c *gin.Context) {
	var req dto.CrearCotizadorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cot, err := h.svc.Crear(c.Request.Context(), middleware.UserUUID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cot)
}

func (h *CotizadorHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarCotizadorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cot, err := h.svc.Actualizar(c.Request.Context(), middleware.UserUUID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cot)
}

// CambiarEstado godoc
// @Summary      Avanzar la cotización al siguiente paso
// @Description  paso ∈ tramite | confirmacion | cargaro; sólo el sucesor inmediato es válido
// @Tags         cotizador
// @Accept       json
// @Produce      json
// @Param        id   path string true "ID"
// @Param        body body dto.CambiarEstadoRequest true "Paso destino"
// @Success      200 {object} map[string]any
// @Failure      400 {object} apierror.Envelope
// @Router       /api/cotizador/{id}/cambiar-estado/ [post]
func (h *CotizadorHandler) CambiarEstado(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CambiarEstadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.Paso = ""
	}
	cot, err := h.svc.Avanzar(c.Request.Context(), middleware.UserUUID(c), id, req.Paso)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   fmt.Sprintf("Estado actualizado a %s correctamente", cot.Etapa.Nombre()),
		"cotizador": cot,
	})
}

// RevertirEstado POST /api/cotizador/:id/revertir-estado/
func (h *CotizadorHandler) RevertirEstado(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CambiarEstadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.Paso = ""
	}
	cot, err := h.svc.Revertir(c.Request.Context(), middleware.UserUUID(c), id, req.Paso)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   fmt.Sprintf("Estado revertido a %s correctamente", cot.Etapa.Nombre()),
		"cotizador": cot,
	})
}

// ─── Pagos ───────────────────────────────────────────────────────────────────

// ListarPagos GET /api/cotizador/:id/pagos/
func (h *CotizadorHandler) ListarPagos(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	opts, ok := parseListQuery(c)
	if !ok {
		return
	}
	pagos, total, err := h.svc.ListarPagos(c.Request.Context(), id, opts)
	if err != nil {
		respondError(c, err)
		return
	}
	if pagos == nil {
		pagos = []model.CotizadorPago{}
	}
	c.JSON(http.StatusOK, paginar(c, total, opts.Page, opts.PageSize, pagos))
}

// CrearPago POST /api/cotizador/:id/pagos/create/
func (h *CotizadorHandler) CrearPago(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CrearCotizadorPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	pago, err := h.svc.CrearPago(c.Request.Context(), middleware.UserUUID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pago)
}

// ActualizarPago PUT /api/cotizador/pagos/:pago_id/update/
func (h *CotizadorHandler) ActualizarPago(c *gin.Context) {
	pagoID, ok := parseID(c, "pago_id")
	if !ok {
		return
	}
	var req dto.ActualizarCotizadorPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	pago, err := h.svc.ActualizarPago(c.Request.Context(), middleware.UserUUID(c), pagoID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pago)
}

// EliminarPago DELETE /api/cotizador/pagos/:pago_id/delete/
func (h *CotizadorHandler) EliminarPago(c *gin.Context) {
	pagoID, ok := parseID(c, "pago_id")
	if !ok {
		return
	}
	if err := h.svc.EliminarPago(c.Request.Context(), middleware.UserUUID(c), pagoID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// ─── PDF y correo ────────────────────────────────────────────────────────────

// PDF GET /api/cotizador/:id/pdf/ — streams the quote as a PDF download.
func (h *CotizadorHandler) PDF(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	cot, doc, err := h.svc.GenerarPDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	nombre := fmt.Sprintf("cotizacion_%s.pdf", cot.ID)
	c.Header("Content-Disposition", `attachment; filename="`+nombre+`"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}

// Enviar POST /api/cotizador/:id/enviar/
func (h *CotizadorHandler) Enviar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.EnviarCotizadorRequest
	if c.Request.ContentLength > 0 && !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Enviar(c.Request.Context(), id, req.Correo); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Mensaje{Mensaje: "Cotización enviada correctamente."})
}
