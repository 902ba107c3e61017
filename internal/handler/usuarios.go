package handler

import (
	"net/http"

	"tramitesbackend/internal/apierror"
	"tramitesbackend/internal/dto"
	"tramitesbackend/internal/middleware"
	"tramitesbackend/internal/presence"
	"tramitesbackend/internal/repository"
	"tramitesbackend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type UsuariosHandler struct {
	svc      service.UsuarioService
	presence *presence.Store
}

func NewUsuariosHandler(svc service.UsuarioService, presence *presence.Store) *UsuariosHandler {
	return &UsuariosHandler{svc: svc, presence: presence}
}

// Me GET /api/user/me/
func (h *UsuariosHandler) Me(c *gin.Context) {
	id := middleware.UserUUID(c)
	if id == nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticación requerida."))
		return
	}
	user, err := h.svc.Obtener(c.Request.Context(), *id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Crear POST /api/user/create/
func (h *UsuariosHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	user, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Listar GET /api/user/list/ — filters: role, is_active, search.
func (h *UsuariosHandler) Listar(c *gin.Context) {
	var q dto.FiltroUsuariosQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parámetros inválidos."))
		return
	}
	filtro := repository.FiltroUsuarios{Busqueda: q.Search}
	if q.Role != "" {
		filtro.Role = &q.Role
	}
	switch q.IsActive {
	case "1", "true":
		activo := true
		filtro.IsActive = &activo
	case "0", "false":
		activo := false
		filtro.IsActive = &activo
	}
	usuarios, err := h.svc.Listar(c.Request.Context(), filtro)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usuarios)
}

// Actualizar PUT /api/user/:id/update/
func (h *UsuariosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	user, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Eliminar DELETE /api/user/:id/delete/ — deactivates, never deletes the row.
func (h *UsuariosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// Obtener GET /api/user/:id/
func (h *UsuariosHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CambiarEstado POST /api/user/:id/toggle-status/
func (h *UsuariosHandler) CambiarEstado(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := h.svc.CambiarEstado(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ─── Presencia ───────────────────────────────────────────────────────────────

// Heartbeat POST /api/user/heartbeat/ — refreshes the caller's online mark.
func (h *UsuariosHandler) Heartbeat(c *gin.Context) {
	id := middleware.UserUUID(c)
	if id == nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticación requerida."))
		return
	}
	if err := h.presence.Marcar(c.Request.Context(), *id); err != nil {
		log.Error().Err(err).Msg("no se pudo registrar el heartbeat")
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.Mensaje{Mensaje: "ok"})
}

// Online GET /api/user/online/ — IDs of every user with a live heartbeat.
func (h *UsuariosHandler) Online(c *gin.Context) {
	ids, err := h.presence.Listar(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	c.JSON(http.StatusOK, gin.H{"online": ids})
}
