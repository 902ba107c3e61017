package service

import (
	"context"

	"tramitesbackend/internal/apierror"
	"tramitesbackend/internal/dto"
	"tramitesbackend/internal/model"
	"tramitesbackend/internal/repository"

	"github.com/google/uuid"
)

type AjusteService struct {
	*CrudService[model.AjusteDeSaldo]
	clientes repository.CrudRepository[model.Cliente]
}

func NewAjusteService(repo repository.CrudRepository[model.AjusteDeSaldo], clientes repository.CrudRepository[model.Cliente], historial repository.HistorialRepository) *AjusteService {
	return &AjusteService{
		CrudService: NewCrudService(repo, historial),
		clientes:    clientes,
	}
}

func (s *AjusteService) Crear(ctx context.Context, usuarioID *uuid.UUID, req dto.CrearAjusteRequest) (*model.AjusteDeSaldo, error) {
	if _, err := validarCliente(ctx, s.clientes, req.Cliente); err != nil {
		return nil, err
	}
	fecha, err := parsearFecha(req.Fecha, "fecha")
	if err != nil {
		return nil, err
	}
	aj := model.AjusteDeSaldo{
		UsuarioID:   usuarioID,
		ClienteID:   req.Cliente,
		Valor:       req.Valor,
		Observacion: req.Observacion,
		Fecha:       fecha,
	}
	if err := s.guardarNuevo(ctx, usuarioID, &aj); err != nil {
		return nil, err
	}
	return s.Obtener(ctx, aj.ID)
}

func (s *AjusteService) Actualizar(ctx context.Context, usuarioID *uuid.UUID, id uuid.UUID, req dto.ActualizarAjusteRequest) (*model.AjusteDeSaldo, error) {
	aj, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if aj.EstaEliminado() {
		return nil, apierror.EstadoInvalido("El registro está eliminado.")
	}
	if req.Cliente != nil {
		if _, err := validarCliente(ctx, s.clientes, *req.Cliente); err != nil {
			return nil, err
		}
		aj.ClienteID = *req.Cliente
	}
	if req.Valor != nil {
		aj.Valor = *req.Valor
	}
	if req.Observacion != nil {
		aj.Observacion = req.Observacion
	}
	if req.Fecha != nil {
		fecha, err := parsearFecha(*req.Fecha, "fecha")
		if err != nil {
			return nil, err
		}
		aj.Fecha = fecha
	}
	if err := s.guardarCambios(ctx, usuarioID, aj); err != nil {
		return nil, err
	}
	return s.Obtener(ctx, aj.ID)
}
