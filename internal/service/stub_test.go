package service

import (
	"context"
	"reflect"
	"time"

	"tramitesbackend/internal/model"
	"tramitesbackend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubCrudRepo is an in-memory CrudRepository. ID and DeletedAt are reached
// through reflection so one stub covers every entity, embedded fields
// included.
type stubCrudRepo[T any] struct {
	items       map[uuid.UUID]T
	falloCreate error
}

func newStubCrudRepo[T any]() *stubCrudRepo[T] {
	return &stubCrudRepo[T]{items: make(map[uuid.UUID]T)}
}

func campoID[T any](ent *T) uuid.UUID {
	return reflect.ValueOf(ent).Elem().FieldByName("ID").Interface().(uuid.UUID)
}

func asignarID[T any](ent *T, id uuid.UUID) {
	reflect.ValueOf(ent).Elem().FieldByName("ID").Set(reflect.ValueOf(id))
}

func marcarEliminado[T any](ent *T, borrado bool) {
	marca := gorm.DeletedAt{}
	if borrado {
		marca = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}
	reflect.ValueOf(ent).Elem().FieldByName("DeletedAt").Set(reflect.ValueOf(marca))
}

func estaEliminado[T any](ent *T) bool {
	return reflect.ValueOf(ent).Elem().FieldByName("DeletedAt").Interface().(gorm.DeletedAt).Valid
}

func (r *stubCrudRepo[T]) Create(_ context.Context, ent *T) error {
	if r.falloCreate != nil {
		return r.falloCreate
	}
	if campoID(ent) == uuid.Nil {
		asignarID(ent, uuid.New())
	}
	r.items[campoID(ent)] = *ent
	return nil
}

func (r *stubCrudRepo[T]) FindByID(_ context.Context, id uuid.UUID) (*T, error) {
	ent, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := ent
	return &copia, nil
}

func (r *stubCrudRepo[T]) List(_ context.Context, opts repository.ListaOpciones) ([]T, int64, error) {
	var out []T
	for id := range r.items {
		ent := r.items[id]
		if !opts.IncluirEliminados && estaEliminado(&ent) {
			continue
		}
		out = append(out, ent)
	}
	return out, int64(len(out)), nil
}

func (r *stubCrudRepo[T]) Update(_ context.Context, ent *T) error {
	r.items[campoID(ent)] = *ent
	return nil
}

func (r *stubCrudRepo[T]) SoftDelete(_ context.Context, id uuid.UUID) error {
	ent, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	marcarEliminado(&ent, true)
	r.items[id] = ent
	return nil
}

func (r *stubCrudRepo[T]) Restore(_ context.Context, id uuid.UUID) error {
	ent, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	marcarEliminado(&ent, false)
	r.items[id] = ent
	return nil
}

func (r *stubCrudRepo[T]) HardDelete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

var _ repository.CrudRepository[model.Cliente] = (*stubCrudRepo[model.Cliente])(nil)

// stubHistorialRepo captures audit entries for assertion.
type stubHistorialRepo struct {
	entradas []model.Historial
}

func (r *stubHistorialRepo) Create(_ context.Context, h *model.Historial) error {
	r.entradas = append(r.entradas, *h)
	return nil
}

func (r *stubHistorialRepo) ListByEntidad(_ context.Context, entidad string, entidadID uuid.UUID, _, _ int) ([]model.Historial, int64, error) {
	var out []model.Historial
	for _, h := range r.entradas {
		if h.Entidad == entidad && h.EntidadID == entidadID {
			out = append(out, h)
		}
	}
	return out, int64(len(out)), nil
}

var _ repository.HistorialRepository = (*stubHistorialRepo)(nil)

// ── Seed helpers ──────────────────────────────────────────────────────────────

func seedCliente(repo *stubCrudRepo[model.Cliente], nombre string) *model.Cliente {
	cli := model.Cliente{ID: uuid.New(), Nombre: nombre}
	repo.items[cli.ID] = cli
	return &cli
}

func seedTarjeta(repo *stubCrudRepo[model.Tarjeta], numero, cuatroPorMil string) *model.Tarjeta {
	t := model.Tarjeta{ID: uuid.New(), Numero: numero, Titular: "Titular", CuatroPorMil: cuatroPorMil}
	repo.items[t.ID] = t
	return &t
}
