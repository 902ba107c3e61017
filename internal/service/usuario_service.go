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

type UsuarioService interface {
	Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*model.Usuario, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	Listar(ctx context.Context, filtro repository.FiltroUsuarios) ([]model.Usuario, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*model.Usuario, error)
	CambiarEstado(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type usuarioService struct {
	repo repository.UsuarioRepository
}

func NewUsuarioService(repo repository.UsuarioRepository) UsuarioService {
	return &usuarioService{repo: repo}
}

func (s *usuarioService) Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*model.Usuario, error) {
	role := req.Role
	if role == "" {
		role = model.RolAdmin
	}
	if !model.RolValido(role) {
		return nil, apierror.Validacion("El rol %s no es válido.", role)
	}
	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, apierror.Inesperado(err)
	}
	user := &model.Usuario{
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("Ya existe un usuario con ese nombre.")
		}
		return nil, apierror.Almacenamiento(err)
	}
	return user, nil
}

func (s *usuarioService) Obtener(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El usuario no existe.")
		}
		return nil, apierror.Almacenamiento(err)
	}
	return user, nil
}

func (s *usuarioService) Listar(ctx context.Context, filtro repository.FiltroUsuarios) ([]model.Usuario, error) {
	usuarios, err := s.repo.List(ctx, filtro)
	if err != nil {
		return nil, apierror.Almacenamiento(err)
	}
	return usuarios, nil
}

func (s *usuarioService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*model.Usuario, error) {
	user, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Role != nil {
		if !model.RolValido(*req.Role) {
			return nil, apierror.Validacion("El rol %s no es válido.", *req.Role)
		}
		user.Role = *req.Role
	}
	if req.Password != nil {
		hash, err := HashPassword(*req.Password)
		if err != nil {
			return nil, apierror.Inesperado(err)
		}
		user.PasswordHash = hash
	}
	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("Ya existe un usuario con ese nombre.")
		}
		return nil, apierror.Almacenamiento(err)
	}
	return user, nil
}

// Desactivar retires an account. Users are never soft-deleted; the delete
// endpoint just clears is_active.
func (s *usuarioService) Desactivar(ctx context.Context, id uuid.UUID) error {
	user, err := s.Obtener(ctx, id)
	if err != nil {
		return err
	}
	user.IsActive = false
	if err := s.repo.Update(ctx, user); err != nil {
		return apierror.Almacenamiento(err)
	}
	return nil
}

// CambiarEstado flips is_active.
func (s *usuarioService) CambiarEstado(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	user, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	user.IsActive = !user.IsActive
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, apierror.Almacenamiento(err)
	}
	return user, nil
}
