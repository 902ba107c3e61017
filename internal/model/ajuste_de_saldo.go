package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AjusteDeSaldo corrects a client's running balance by hand. No card is
// involved, so the surcharge never applies here.
type AjusteDeSaldo struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UsuarioID   *uuid.UUID      `gorm:"type:uuid" json:"usuario"`
	ClienteID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"cliente"`
	Valor       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"valor"`
	Observacion *string         `json:"observacion"`
	Fecha       time.Time       `gorm:"not null;index" json:"fecha"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"deleted_at"`

	Usuario *Usuario `gorm:"foreignKey:UsuarioID" json:"usuario_detalle,omitempty"`
	Cliente *Cliente `gorm:"foreignKey:ClienteID" json:"cliente_detalle,omitempty"`
}

func (AjusteDeSaldo) TableName() string { return "ajustes_de_saldo" }

func (a AjusteDeSaldo) ObtenerID() uuid.UUID { return a.ID }
func (a AjusteDeSaldo) EstaEliminado() bool  { return a.DeletedAt.Valid }
func (AjusteDeSaldo) NombreEntidad() string  { return "ajuste_de_saldo" }
