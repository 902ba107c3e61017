package service

import (
	"context"

	"tramitesbackend/internal/dto"
	"tramitesbackend/internal/model"
	"tramitesbackend/internal/repository"

	"github.com/google/uuid"
)

type ProveedorService struct {
	*CrudService[model.Proveedor]
	etiquetas repository.CrudRepository[model.Etiqueta]
}

func NewProveedorService(repo repository.CrudRepository[model.Proveedor], etiquetas repository.CrudRepository[model.Etiqueta], historial repository.HistorialRepository) *ProveedorService {
	return &ProveedorService{
		CrudService: NewCrudService(repo, historial),
		etiquetas:   etiquetas,
	}
}

func (s *ProveedorService) Crear(ctx context.Context, usuarioID *uuid.UUID, req dto.CrearProveedorRequest) (*model.Proveedor, error) {
	if req.Etiqueta != nil {
		if _, err := validarEtiqueta(ctx, s.etiquetas, *req.Etiqueta); err != nil {
			return nil, err
		}
	}
	prov := model.Proveedor{
		Nombre:     req.Nombre,
		Color:      req.Color,
		UserID:     usuarioID,
		EtiquetaID: req.Etiqueta,
	}
	if err := s.guardarNuevo(ctx, usuarioID, &prov); err != nil {
		return nil, err
	}
	return s.Obtener(ctx, prov.ID)
}

func (s *ProveedorService) Actualizar(ctx context.Context, usuarioID *uuid.UUID, id uuid.UUID, req dto.ActualizarProveedorRequest) (*model.Proveedor, error) {
	prov, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Nombre != nil {
		prov.Nombre = *req.Nombre
	}
	if req.Color != nil {
		prov.Color = *req.Color
	}
	if req.Etiqueta != nil {
		if _, err := validarEtiqueta(ctx, s.etiquetas, *req.Etiqueta); err != nil {
			return nil, err
		}
		prov.EtiquetaID = req.Etiqueta
	}
	if err := s.guardarCambios(ctx, usuarioID, prov); err != nil {
		return nil, err
	}
	return s.Obtener(ctx, prov.ID)
}
