package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Tipos de evento registrados en el historial.
const (
	HistorialCreado      = "creado"
	HistorialActualizado = "actualizado"
	HistorialEliminado   = "eliminado"
)

// Historial is an audit row: one entry per create, update or delete of any
// record, with a full JSON snapshot taken after the change. Restores are
// recorded as updates.
type Historial struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Entidad   string         `gorm:"type:varchar(50);not null;index:idx_historial_entidad" json:"entidad"`
	EntidadID uuid.UUID      `gorm:"type:uuid;not null;index:idx_historial_entidad" json:"entidad_id"`
	Tipo      string         `gorm:"type:varchar(20);not null" json:"history_type"`
	UsuarioID *uuid.UUID     `gorm:"type:uuid" json:"usuario"`
	Snapshot  datatypes.JSON `gorm:"not null" json:"snapshot"`
	CreatedAt time.Time      `gorm:"index" json:"history_date"`

	Usuario *Usuario `gorm:"foreignKey:UsuarioID" json:"usuario_detalle,omitempty"`
}

func (Historial) TableName() string { return "historial" }
