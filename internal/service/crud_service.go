package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tramitesbackend/internal/apierror"
	"tramitesbackend/internal/model"
	"tramitesbackend/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CrudService is the shared behaviour of every soft-deletable entity:
// retrieval (soft-deleted rows included), listing, soft delete, restore,
// hard delete and the audit history. Per-entity services embed it and add
// their own Crear/Actualizar with the entity's validation rules.
type CrudService[T model.Registro] struct {
	repo      repository.CrudRepository[T]
	historial repository.HistorialRepository
}

func NewCrudService[T model.Registro](repo repository.CrudRepository[T], historial repository.HistorialRepository) *CrudService[T] {
	return &CrudService[T]{repo: repo, historial: historial}
}

func (s *CrudService[T]) Obtener(ctx context.Context, id uuid.UUID) (*T, error) {
	ent, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traducirErr(err)
	}
	return ent, nil
}

func (s *CrudService[T]) Listar(ctx context.Context, opts repository.ListaOpciones) ([]T, int64, error) {
	ents, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, apierror.Almacenamiento(err)
	}
	return ents, total, nil
}

// Eliminar marca el registro como eliminado. Es idempotente: repetir el
// borrado no falla ni duplica la entrada de historial.
func (s *CrudService[T]) Eliminar(ctx context.Context, usuarioID *uuid.UUID, id uuid.UUID) error {
	ent, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return traducirErr(err)
	}
	if (*ent).EstaEliminado() {
		return nil
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return traducirErr(err)
	}
	if ent, err = s.repo.FindByID(ctx, id); err == nil {
		s.registrar(ctx, model.HistorialEliminado, usuarioID, ent)
	}
	return nil
}

// Restaurar clears the soft-delete marker. Restoring a record that is not
// deleted is a state error, not a no-op.
func (s *CrudService[T]) Restaurar(ctx context.Context, usuarioID *uuid.UUID, id uuid.UUID) (*T, error) {
	ent, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traducirErr(err)
	}
	if !(*ent).EstaEliminado() {
		return nil, apierror.EstadoInvalido("El registro no está eliminado.")
	}
	if err := s.repo.Restore(ctx, id); err != nil {
		return nil, traducirErr(err)
	}
	ent, err = s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traducirErr(err)
	}
	s.registrar(ctx, model.HistorialActualizado, usuarioID, ent)
	return ent, nil
}

func (s *CrudService[T]) EliminarDefinitivo(ctx context.Context, usuarioID *uuid.UUID, id uuid.UUID) error {
	ent, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return traducirErr(err)
	}
	s.registrar(ctx, model.HistorialEliminado, usuarioID, ent)
	if err := s.repo.HardDelete(ctx, id); err != nil {
		return traducirErr(err)
	}
	return nil
}

func (s *CrudService[T]) Historial(ctx context.Context, id uuid.UUID, page, pageSize int) ([]model.Historial, int64, error) {
	var zero T
	entradas, total, err := s.historial.ListByEntidad(ctx, zero.NombreEntidad(), id, page, pageSize)
	if err != nil {
		return nil, 0, apierror.Almacenamiento(err)
	}
	return entradas, total, nil
}

// guardarNuevo persists a freshly built entity and records its creation.
func (s *CrudService[T]) guardarNuevo(ctx context.Context, usuarioID *uuid.UUID, ent *T) error {
	if err := s.repo.Create(ctx, ent); err != nil {
		return traducirErr(err)
	}
	s.registrar(ctx, model.HistorialCreado, usuarioID, ent)
	return nil
}

// guardarCambios persists an updated entity and records the update.
func (s *CrudService[T]) guardarCambios(ctx context.Context, usuarioID *uuid.UUID, ent *T) error {
	if err := s.repo.Update(ctx, ent); err != nil {
		return traducirErr(err)
	}
	s.registrar(ctx, model.HistorialActualizado, usuarioID, ent)
	return nil
}

// registrar appends an audit entry with the post-change snapshot. A failure
// here is logged but never fails the request that caused it.
func (s *CrudService[T]) registrar(ctx context.Context, tipo string, usuarioID *uuid.UUID, ent *T) {
	snap, err := json.Marshal(ent)
	if err != nil {
		log.Error().Err(err).Str("tipo", tipo).Msg("no se pudo serializar el snapshot de historial")
		return
	}
	h := model.Historial{
		Entidad:   (*ent).NombreEntidad(),
		EntidadID: (*ent).ObtenerID(),
		Tipo:      tipo,
		UsuarioID: usuarioID,
		Snapshot:  snap,
	}
	if err := s.historial.Create(ctx, &h); err != nil {
		log.Error().Err(err).Str("entidad", h.Entidad).Str("tipo", tipo).Msg("no se pudo registrar el historial")
	}
}

func traducirErr(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apierror.NoEncontrado("No encontrado.")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return err
	default:
		return apierror.Almacenamiento(err)
	}
}

// parsearFecha accepts the date formats the API historically admitted.
func parsearFecha(valor, campo string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, valor); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apierror.Validacion("El formato del campo %s debe ser YYYY-MM-DD.", campo)
}
