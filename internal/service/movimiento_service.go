package service

import (
	"context"

	"tramitesbackend/internal/apierror"
	"tramitesbackend/internal/dto"
	"tramitesbackend/internal/model"
	"tramitesbackend/internal/repository"

	"github.com/google/uuid"
)

// movimientoPtr ties a movement entity to its shared fields.
type movimientoPtr[T any] interface {
	*T
	Movimiento() *model.MovimientoDinero
}

// MovimientoService covers the three money movements with one implementation:
// they differ only in table and entity name. The surcharge and the total are
// always recomputed server-side from valor and the card.
type MovimientoService[T model.Registro, PT movimientoPtr[T]] struct {
	*CrudService[T]
	clientes repository.CrudRepository[model.Cliente]
	tarjetas repository.CrudRepository[model.Tarjeta]
}

func NewMovimientoService[T model.Registro, PT movimientoPtr[T]](
	repo repository.CrudRepository[T],
	clientes repository.CrudRepository[model.Cliente],
	tarjetas repository.CrudRepository[model.Tarjeta],
	historial repository.HistorialRepository,
) *MovimientoService[T, PT] {
	return &MovimientoService[T, PT]{
		CrudService: NewCrudService(repo, historial),
		clientes:    clientes,
		tarjetas:    tarjetas,
	}
}

func (s *MovimientoService[T, PT]) Crear(ctx context.Context, usuarioID *uuid.UUID, req dto.MovimientoRequest) (*T, error) {
	if _, err := validarCliente(ctx, s.clientes, req.Cliente); err != nil {
		return nil, err
	}
	var tarjeta *model.Tarjeta
	if req.Tarjeta != nil {
		t, err := validarTarjeta(ctx, s.tarjetas, *req.Tarjeta)
		if err != nil {
			return nil, err
		}
		tarjeta = t
	}
	fecha, err := parsearFecha(req.Fecha, "fecha")
	if err != nil {
		return nil, err
	}

	var ent T
	m := PT(&ent).Movimiento()
	m.UsuarioID = usuarioID
	m.ClienteID = req.Cliente
	m.TarjetaID = req.Tarjeta
	m.Observacion = req.Observacion
	m.Valor = req.Valor
	m.Fecha = fecha
	m.Recalcular(tarjeta)

	if err := s.guardarNuevo(ctx, usuarioID, &ent); err != nil {
		return nil, err
	}
	return s.Obtener(ctx, m.ID)
}

func (s *MovimientoService[T, PT]) Actualizar(ctx context.Context, usuarioID *uuid.UUID, id uuid.UUID, req dto.ActualizarMovimientoRequest) (*T, error) {
	ent, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if (*ent).EstaEliminado() {
		return nil, apierror.EstadoInvalido("El registro está eliminado.")
	}
	m := PT(ent).Movimiento()

	if req.Cliente != nil {
		if _, err := validarCliente(ctx, s.clientes, *req.Cliente); err != nil {
			return nil, err
		}
		m.ClienteID = *req.Cliente
	}
	recalcular := false
	var tarjeta *model.Tarjeta
	if req.Tarjeta != nil {
		t, err := validarTarjeta(ctx, s.tarjetas, *req.Tarjeta)
		if err != nil {
			return nil, err
		}
		m.TarjetaID = req.Tarjeta
		tarjeta = t
		recalcular = true
	}
	if req.Observacion != nil {
		m.Observacion = req.Observacion
	}
	if req.Valor != nil {
		m.Valor = *req.Valor
		recalcular = true
	}
	if req.Fecha != nil {
		fecha, err := parsearFecha(*req.Fecha, "fecha")
		if err != nil {
			return nil, err
		}
		m.Fecha = fecha
	}
	if recalcular {
		if tarjeta == nil && m.TarjetaID != nil {
			t, err := s.tarjetas.FindByID(ctx, *m.TarjetaID)
			if err != nil {
				return nil, traducirErr(err)
			}
			tarjeta = t
		}
		m.Recalcular(tarjeta)
	}

	if err := s.guardarCambios(ctx, usuarioID, ent); err != nil {
		return nil, err
	}
	return s.Obtener(ctx, m.ID)
}
