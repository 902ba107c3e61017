package service

import (
	"context"

	"tramitesbackend/internal/apierror"
	"tramitesbackend/internal/dto"
	"tramitesbackend/internal/model"
	"tramitesbackend/internal/repository"

	"github.com/google/uuid"
)

// GastoService manages expense concepts and their card relations. Relations
// carry the surcharge arithmetic; the concept itself holds no amounts.
type GastoService struct {
	*CrudService[model.Gasto]
	relaciones *CrudService[model.GastoRelacion]
	gastos     repository.CrudRepository[model.Gasto]
	tarjetas   repository.CrudRepository[model.Tarjeta]
}

func NewGastoService(
	repo repository.CrudRepository[model.Gasto],
	relaciones repository.CrudRepository[model.GastoRelacion],
	tarjetas repository.CrudRepository[model.Tarjeta],
	historial repository.HistorialRepository,
) *GastoService {
	return &GastoService{
		CrudService: NewCrudService(repo, historial),
		relaciones:  NewCrudService(relaciones, historial),
		gastos:      repo,
		tarjetas:    tarjetas,
	}
}

func (s *GastoService) Crear(ctx context.Context, usuarioID *uuid.UUID, req dto.CrearGastoRequest) (*model.Gasto, error) {
	g := model.Gasto{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		UserID:      usuarioID,
	}
	if err := s.guardarNuevo(ctx, usuarioID, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *GastoService) Actualizar(ctx context.Context, usuarioID *uuid.UUID, id uuid.UUID, req dto.ActualizarGastoRequest) (*model.Gasto, error) {
	g, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Nombre != nil {
		g.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		g.Descripcion = *req.Descripcion
	}
	if err := s.guardarCambios(ctx, usuarioID, g); err != nil {
		return nil, err
	}
	return g, nil
}

// ─── Relaciones gasto ↔ tarjeta ──────────────────────────────────────────────

func (s *GastoService) ListarRelaciones(ctx context.Context, opts repository.ListaOpciones) ([]model.GastoRelacion, int64, error) {
	return s.relaciones.Listar(ctx, opts)
}

func (s *GastoService) ObtenerRelacion(ctx context.Context, id uuid.UUID) (*model.GastoRelacion, error) {
	return s.relaciones.Obtener(ctx, id)
}

func (s *GastoService) HistorialRelacion(ctx context.Context, id uuid.UUID, page, pageSize int) ([]model.Historial, int64, error) {
	return s.relaciones.Historial(ctx, id, page, pageSize)
}

func (s *GastoService) CrearRelacion(ctx context.Context, usuarioID *uuid.UUID, req dto.CrearGastoRelacionRequest) (*model.GastoRelacion, error) {
	if _, err := validarGasto(ctx, s.gastos, req.Gasto); err != nil {
		return nil, err
	}
	tarjeta, err := validarTarjeta(ctx, s.tarjetas, req.Tarjeta)
	if err != nil {
		return nil, err
	}
	fecha, err := parsearFecha(req.Fecha, "fecha")
	if err != nil {
		return nil, err
	}
	rel := model.GastoRelacion{
		UsuarioID:   usuarioID,
		GastoID:     req.Gasto,
		TarjetaID:   req.Tarjeta,
		Valor:       req.Valor,
		Observacion: req.Observacion,
		Fecha:       fecha,
	}
	rel.Recalcular(tarjeta)
	if err := s.relaciones.guardarNuevo(ctx, usuarioID, &rel); err != nil {
		return nil, err
	}
	return s.relaciones.Obtener(ctx, rel.ID)
}

func (s *GastoService) ActualizarRelacion(ctx context.Context, usuarioID *uuid.UUID, id uuid.UUID, req dto.ActualizarGastoRelacionRequest) (*model.GastoRelacion, error) {
	rel, err := s.relaciones.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if rel.EstaEliminado() {
		return nil, apierror.EstadoInvalido("El registro está eliminado.")
	}
	if req.Gasto != nil {
		if _, err := validarGasto(ctx, s.gastos, *req.Gasto); err != nil {
			return nil, err
		}
		rel.GastoID = *req.Gasto
	}
	recalcular := false
	var tarjeta *model.Tarjeta
	if req.Tarjeta != nil {
		t, err := validarTarjeta(ctx, s.tarjetas, *req.Tarjeta)
		if err != nil {
			return nil, err
		}
		rel.TarjetaID = *req.Tarjeta
		tarjeta = t
		recalcular = true
	}
	if req.Valor != nil {
		rel.Valor = *req.Valor
		recalcular = true
	}
	if req.Observacion != nil {
		rel.Observacion = req.Observacion
	}
	if req.Fecha != nil {
		fecha, err := parsearFecha(*req.Fecha, "fecha")
		if err != nil {
			return nil, err
		}
		rel.Fecha = fecha
	}
	if recalcular {
		if tarjeta == nil {
			t, err := s.tarjetas.FindByID(ctx, rel.TarjetaID)
			if err != nil {
				return nil, traducirErr(err)
			}
			tarjeta = t
		}
		rel.Recalcular(tarjeta)
	}
	if err := s.relaciones.guardarCambios(ctx, usuarioID, rel); err != nil {
		return nil, err
	}
	return s.relaciones.Obtener(ctx, rel.ID)
}

func (s *GastoService) EliminarRelacion(ctx context.Context, usuarioID *uuid.UUID, id uuid.UUID) error {
	return s.relaciones.Eliminar(ctx, usuarioID, id)
}

func (s *GastoService) RestaurarRelacion(ctx context.Context, usuarioID *uuid.UUID, id uuid.UUID) (*model.GastoRelacion, error) {
	return s.relaciones.Restaurar(ctx, usuarioID, id)
}

func (s *GastoService) EliminarRelacionDefinitivo(ctx context.Context, usuarioID *uuid.UUID, id uuid.UUID) error {
	return s.relaciones.EliminarDefinitivo(ctx, usuarioID, id)
}
