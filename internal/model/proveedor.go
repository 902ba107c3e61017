package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Proveedor is a service provider, optionally grouped under an Etiqueta.
type Proveedor struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nombre     string         `gorm:"not null;index" json:"nombre"`
	Color      string         `gorm:"type:varchar(7);not null;default:'#1976d2'" json:"color"`
	UserID     *uuid.UUID     `gorm:"type:uuid" json:"user"`
	EtiquetaID *uuid.UUID     `gorm:"type:uuid;index" json:"etiqueta"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	User     *Usuario  `gorm:"foreignKey:UserID" json:"user_detalle,omitempty"`
	Etiqueta *Etiqueta `gorm:"foreignKey:EtiquetaID" json:"etiqueta_detalle,omitempty"`
}

func (Proveedor) TableName() string { return "proveedores" }

func (p Proveedor) ObtenerID() uuid.UUID { return p.ID }
func (p Proveedor) EstaEliminado() bool  { return p.DeletedAt.Valid }
func (Proveedor) NombreEntidad() string  { return "proveedor" }
