package service

import (
	"context"
	"errors"

	"tramitesbackend/internal/apierror"
	"tramitesbackend/internal/dto"
	"tramitesbackend/internal/model"
	"tramitesbackend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TarjetaService guards the card-number uniqueness, which spans soft-deleted
// cards too: a number stays taken while its card sits in the trash.
type TarjetaService struct {
	*CrudService[model.Tarjeta]
}

func NewTarjetaService(repo repository.CrudRepository[model.Tarjeta], historial repository.HistorialRepository) *TarjetaService {
	return &TarjetaService{CrudService: NewCrudService(repo, historial)}
}

func (s *TarjetaService) Crear(ctx context.Context, usuarioID *uuid.UUID, req dto.CrearTarjetaRequest) (*model.Tarjeta, error) {
	tar := model.Tarjeta{
		Numero:       req.Numero,
		Titular:      req.Titular,
		Descripcion:  req.Descripcion,
		CuatroPorMil: req.CuatroPorMil,
		UsuarioID:    req.Usuario,
	}
	if tar.CuatroPorMil == "" {
		tar.CuatroPorMil = model.CuatroPorMilExento
	}
	if err := s.guardarNuevo(ctx, usuarioID, &tar); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("Ya existe una tarjeta con ese número.")
		}
		return nil, err
	}
	return &tar, nil
}

func (s *TarjetaService) Actualizar(ctx context.Context, usuarioID *uuid.UUID, id uuid.UUID, req dto.ActualizarTarjetaRequest) (*model.Tarjeta, error) {
	tar, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Numero != nil {
		tar.Numero = *req.Numero
	}
	if req.Titular != nil {
		tar.Titular = *req.Titular
	}
	if req.Descripcion != nil {
		tar.Descripcion = *req.Descripcion
	}
	if req.CuatroPorMil != nil {
		tar.CuatroPorMil = *req.CuatroPorMil
	}
	if req.Usuario != nil {
		tar.UsuarioID = req.Usuario
	}
	if err := s.guardarCambios(ctx, usuarioID, tar); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("Ya existe una tarjeta con ese número.")
		}
		return nil, err
	}
	return tar, nil
}
