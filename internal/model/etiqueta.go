package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Etiqueta is a color-coded label attached to quotes and suppliers.
type Etiqueta struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nombre    string         `gorm:"type:varchar(100);not null" json:"nombre"`
	Color     string         `gorm:"type:varchar(7);not null;default:'#1976d2'" json:"color"`
	UserID    *uuid.UUID     `gorm:"type:uuid" json:"user"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	User *Usuario `gorm:"foreignKey:UserID" json:"user_detalle,omitempty"`
}

func (Etiqueta) TableName() string { return "etiquetas" }

func (e Etiqueta) ObtenerID() uuid.UUID { return e.ID }
func (e Etiqueta) EstaEliminado() bool  { return e.DeletedAt.Valid }
func (Etiqueta) NombreEntidad() string  { return "etiqueta" }
