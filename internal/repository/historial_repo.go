package repository

import (
	"context"

	"tramitesbackend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HistorialRepository interface {
	Create(ctx context.Context, h *model.Historial) error
	ListByEntidad(ctx context.Context, entidad string, entidadID uuid.UUID, page, pageSize int) ([]model.Historial, int64, error)
}

type historialRepo struct{ db *gorm.DB }

func NewHistorialRepository(db *gorm.DB) HistorialRepository { return &historialRepo{db: db} }

func (r *historialRepo) Create(ctx context.Context, h *model.Historial) error {
	return r.db.WithContext(ctx).Create(h).Error
}

// ListByEntidad returns the newest entries first.
func (r *historialRepo) ListByEntidad(ctx context.Context, entidad string, entidadID uuid.UUID, page, pageSize int) ([]model.Historial, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Historial{}).
		Where("entidad = ? AND entidad_id = ?", entidad, entidadID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entradas []model.Historial
	err := q.Preload("Usuario").Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&entradas).Error
	if err != nil {
		return nil, 0, err
	}
	return entradas, total, nil
}
