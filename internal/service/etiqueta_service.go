package service

import (
	"context"

	"tramitesbackend/internal/dto"
	"tramitesbackend/internal/model"
	"tramitesbackend/internal/repository"

	"github.com/google/uuid"
)

type EtiquetaService struct {
	*CrudService[model.Etiqueta]
}

func NewEtiquetaService(repo repository.CrudRepository[model.Etiqueta], historial repository.HistorialRepository) *EtiquetaService {
	return &EtiquetaService{CrudService: NewCrudService(repo, historial)}
}

func (s *EtiquetaService) Crear(ctx context.Context, usuarioID *uuid.UUID, req dto.CrearEtiquetaRequest) (*model.Etiqueta, error) {
	et := model.Etiqueta{
		Nombre: req.Nombre,
		Color:  req.Color,
		UserID: usuarioID,
	}
	if err := s.guardarNuevo(ctx, usuarioID, &et); err != nil {
		return nil, err
	}
	return &et, nil
}

func (s *EtiquetaService) Actualizar(ctx context.Context, usuarioID *uuid.UUID, id uuid.UUID, req dto.ActualizarEtiquetaRequest) (*model.Etiqueta, error) {
	et, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Nombre != nil {
		et.Nombre = *req.Nombre
	}
	if req.Color != nil {
		et.Color = *req.Color
	}
	if err := s.guardarCambios(ctx, usuarioID, et); err != nil {
		return nil, err
	}
	return et, nil
}
