package handler

import (
	"net/http"

	"tramitesbackend/internal/middleware"
	"tramitesbackend/internal/model"
	"tramitesbackend/internal/service"

	"github.com/gin-gonic/gin"
)

// crudHandler serves the operations every soft-deletable entity shares. The
// per-entity handlers embed it and add their Crear/Actualizar endpoints.
type crudHandler[T model.Registro] struct {
	svc *service.CrudService[T]
}

// Obtener GET :id/ — soft-deleted records are still retrievable by ID.
func (h *crudHandler[T]) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ent, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ent)
}

// Listar GET list/
func (h *crudHandler[T]) Listar(c *gin.Context) {
	opts, ok := parseListQuery(c)
	if !ok {
		return
	}
	ents, total, err := h.svc.Listar(c.Request.Context(), opts)
	if err != nil {
		respondError(c, err)
		return
	}
	if ents == nil {
		ents = []T{}
	}
	c.JSON(http.StatusOK, paginar(c, total, opts.Page, opts.PageSize, ents))
}

// Eliminar DELETE :id/delete/
func (h *crudHandler[T]) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), middleware.UserUUID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// Restaurar POST :id/restore/
func (h *crudHandler[T]) Restaurar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ent, err := h.svc.Restaurar(c.Request.Context(), middleware.UserUUID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ent)
}

// EliminarDefinitivo DELETE :id/hard-delete/
func (h *crudHandler[T]) EliminarDefinitivo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.EliminarDefinitivo(c.Request.Context(), middleware.UserUUID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// Historial GET :id/history/ — newest first, paginated like any list.
func (h *crudHandler[T]) Historial(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	page, pageSize := parsePagina(c)
	entradas, total, err := h.svc.Historial(c.Request.Context(), id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	if entradas == nil {
		entradas = []model.Historial{}
	}
	c.JSON(http.StatusOK, paginar(c, total, page, pageSize, entradas))
}
