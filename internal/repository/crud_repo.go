package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Descriptor describes how an entity is listed: which columns the free-text
// search covers (including columns of joined parents), the JOIN clauses those
// columns need, the domain date column that fecha_start/fecha_end filter on,
// and the associations to preload.
type Descriptor struct {
	Tabla            string
	ColumnasBusqueda []string
	Joins            []string
	CampoFecha       string
	Preloads         []string
}

// ListaOpciones carries the listing filters already parsed and validated.
// Date bounds are half-open: the caller turns an inclusive end date into an
// exclusive bound one day later.
type ListaOpciones struct {
	Busqueda          string
	IncluirEliminados bool
	Page              int
	PageSize          int
	CreatedDesde      *time.Time
	CreatedHasta      *time.Time
	FechaDesde        *time.Time
	FechaHasta        *time.Time
	Filtros           map[string]any
}

// CrudRepository is the persistence contract shared by every soft-deletable
// entity. FindByID sees soft-deleted rows; List hides them unless asked.
type CrudRepository[T any] interface {
	Create(ctx context.Context, ent *T) error
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	List(ctx context.Context, opts ListaOpciones) ([]T, int64, error)
	Update(ctx context.Context, ent *T) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
	HardDelete(ctx context.Context, id uuid.UUID) error
}

type crudRepo[T any] struct {
	db   *gorm.DB
	desc Descriptor
}

func NewCrudRepository[T any](db *gorm.DB, desc Descriptor) CrudRepository[T] {
	return &crudRepo[T]{db: db, desc: desc}
}

func (r *crudRepo[T]) Create(ctx context.Context, ent *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(ent).Error
}

func (r *crudRepo[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	q := r.db.WithContext(ctx).Unscoped()
	for _, p := range r.desc.Preloads {
		q = q.Preload(p)
	}
	var ent T
	if err := q.First(&ent, "\""+r.desc.Tabla+"\".id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ent, nil
}

func (r *crudRepo[T]) List(ctx context.Context, opts ListaOpciones) ([]T, int64, error) {
	q := r.db.WithContext(ctx).Model(new(T))
	if opts.IncluirEliminados {
		q = q.Unscoped()
	}

	if opts.Busqueda != "" && len(r.desc.ColumnasBusqueda) > 0 {
		for _, join := range r.desc.Joins {
			q = q.Joins(join)
		}
		conds := make([]string, 0, len(r.desc.ColumnasBusqueda))
		args := make([]any, 0, len(r.desc.ColumnasBusqueda))
		for _, col := range r.desc.ColumnasBusqueda {
			conds = append(conds, col+" ILIKE ?")
			args = append(args, "%"+opts.Busqueda+"%")
		}
		q = q.Where(strings.Join(conds, " OR "), args...)
	}

	created := r.desc.Tabla + ".created_at"
	if opts.CreatedDesde != nil {
		q = q.Where(created+" >= ?", *opts.CreatedDesde)
	}
	if opts.CreatedHasta != nil {
		q = q.Where(created+" < ?", *opts.CreatedHasta)
	}
	if r.desc.CampoFecha != "" {
		fecha := r.desc.Tabla + "." + r.desc.CampoFecha
		if opts.FechaDesde != nil {
			q = q.Where(fecha+" >= ?", *opts.FechaDesde)
		}
		if opts.FechaHasta != nil {
			q = q.Where(fecha+" < ?", *opts.FechaHasta)
		}
	}
	for campo, valor := range opts.Filtros {
		q = q.Where(fmt.Sprintf("%s.%s = ?", r.desc.Tabla, campo), valor)
	}

	var total int64
	if err := q.Distinct("\"" + r.desc.Tabla + "\".id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	for _, p := range r.desc.Preloads {
		q = q.Preload(p)
	}
	q = q.Distinct("\"" + r.desc.Tabla + "\".*").Order(created + " DESC")
	if opts.PageSize > 0 {
		q = q.Offset((opts.Page - 1) * opts.PageSize).Limit(opts.PageSize)
	}

	var ents []T
	if err := q.Find(&ents).Error; err != nil {
		return nil, 0, err
	}
	return ents, total, nil
}

// Update writes the full row back; loaded associations are never cascaded.
func (r *crudRepo[T]) Update(ctx context.Context, ent *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(ent).Error
}

func (r *crudRepo[T]) SoftDelete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *crudRepo[T]) Restore(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Unscoped().Model(new(T)).
		Where("id = ?", id).Update("deleted_at", nil)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *crudRepo[T]) HardDelete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Unscoped().Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
