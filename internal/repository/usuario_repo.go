package repository

import (
	"context"

	"tramitesbackend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FiltroUsuarios narrows the user listing. Nil fields are ignored.
type FiltroUsuarios struct {
	Role     *string
	IsActive *bool
	Busqueda string
}

type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	FindByUsername(ctx context.Context, username string) (*model.Usuario, error)
	List(ctx context.Context, filtro FiltroUsuarios) ([]model.Usuario, error)
	Update(ctx context.Context, u *model.Usuario) error
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) FindByUsername(ctx context.Context, username string) (*model.Usuario, error) {
	var u model.Usuario
	if err := r.db.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) List(ctx context.Context, filtro FiltroUsuarios) ([]model.Usuario, error) {
	q := r.db.WithContext(ctx).Model(&model.Usuario{})
	if filtro.Role != nil {
		q = q.Where("role = ?", *filtro.Role)
	}
	if filtro.IsActive != nil {
		q = q.Where("is_active = ?", *filtro.IsActive)
	}
	if filtro.Busqueda != "" {
		patron := "%" + filtro.Busqueda + "%"
		q = q.Where("username ILIKE ? OR email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?",
			patron, patron, patron, patron)
	}
	var usuarios []model.Usuario
	if err := q.Order("created_at DESC").Find(&usuarios).Error; err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *usuarioRepo) Update(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Save(u).Error
}
