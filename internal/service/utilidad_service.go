package service

import (
	"context"

	"tramitesbackend/internal/apierror"
	"tramitesbackend/internal/dto"
	"tramitesbackend/internal/model"
	"tramitesbackend/internal/repository"

	"github.com/google/uuid"
)

type UtilidadService struct {
	*CrudService[model.UtilidadOcasional]
	tarjetas repository.CrudRepository[model.Tarjeta]
}

func NewUtilidadService(repo repository.CrudRepository[model.UtilidadOcasional], tarjetas repository.CrudRepository[model.Tarjeta], historial repository.HistorialRepository) *UtilidadService {
	return &UtilidadService{
		CrudService: NewCrudService(repo, historial),
		tarjetas:    tarjetas,
	}
}

func (s *UtilidadService) Crear(ctx context.Context, usuarioID *uuid.UUID, req dto.CrearUtilidadRequest) (*model.UtilidadOcasional, error) {
	tarjeta, err := validarTarjeta(ctx, s.tarjetas, req.Tarjeta)
	if err != nil {
		return nil, err
	}
	fecha, err := parsearFecha(req.Fecha, "fecha")
	if err != nil {
		return nil, err
	}
	ut := model.UtilidadOcasional{
		UsuarioID:   usuarioID,
		TarjetaID:   req.Tarjeta,
		Valor:       req.Valor,
		Observacion: req.Observacion,
		Fecha:       fecha,
	}
	ut.Recalcular(tarjeta)
	if err := s.guardarNuevo(ctx, usuarioID, &ut); err != nil {
		return nil, err
	}
	return s.Obtener(ctx, ut.ID)
}

func (s *UtilidadService) Actualizar(ctx context.Context, usuarioID *uuid.UUID, id uuid.UUID, req dto.ActualizarUtilidadRequest) (*model.UtilidadOcasional, error) {
	ut, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if ut.EstaEliminado() {
		return nil, apierror.EstadoInvalido("El registro está eliminado.")
	}
	recalcular := false
	var tarjeta *model.Tarjeta
	if req.Tarjeta != nil {
		t, err := validarTarjeta(ctx, s.tarjetas, *req.Tarjeta)
		if err != nil {
			return nil, err
		}
		ut.TarjetaID = *req.Tarjeta
		tarjeta = t
		recalcular = true
	}
	if req.Valor != nil {
		ut.Valor = *req.Valor
		recalcular = true
	}
	if req.Observacion != nil {
		ut.Observacion = req.Observacion
	}
	if req.Fecha != nil {
		fecha, err := parsearFecha(*req.Fecha, "fecha")
		if err != nil {
			return nil, err
		}
		ut.Fecha = fecha
	}
	if recalcular {
		if tarjeta == nil {
			t, err := s.tarjetas.FindByID(ctx, ut.TarjetaID)
			if err != nil {
				return nil, traducirErr(err)
			}
			tarjeta = t
		}
		ut.Recalcular(tarjeta)
	}
	if err := s.guardarCambios(ctx, usuarioID, ut); err != nil {
		return nil, err
	}
	return s.Obtener(ctx, ut.ID)
}
