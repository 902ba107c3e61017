package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Estados del recargo "cuatro por mil" de una tarjeta.
const (
	CuatroPorMilActivo = "1"
	CuatroPorMilExento = "0"
)

// Tarjeta is a payment card used to move money. Numero is unique across ALL
// rows, soft-deleted included: a deleted card still occupies its number.
type Tarjeta struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UsuarioID    *uuid.UUID     `gorm:"type:uuid" json:"usuario"`
	Numero       string         `gorm:"type:varchar(32);uniqueIndex;not null" json:"numero"`
	Titular      string         `gorm:"type:varchar(200);not null" json:"titular"`
	Descripcion  string         `gorm:"type:varchar(255);not null" json:"descripcion"`
	CuatroPorMil string         `gorm:"type:varchar(1);not null;default:'0'" json:"cuatro_por_mil"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	Usuario *Usuario `gorm:"foreignKey:UsuarioID" json:"usuario_detalle,omitempty"`
}

func (Tarjeta) TableName() string { return "tarjetas" }

func (t Tarjeta) ObtenerID() uuid.UUID { return t.ID }
func (t Tarjeta) EstaEliminado() bool  { return t.DeletedAt.Valid }
func (Tarjeta) NombreEntidad() string  { return "tarjeta" }

// CalcularCuatroPorMil returns valor*4/1000 rounded to 2 decimals when the
// card has the surcharge active, exactly zero otherwise.
func CalcularCuatroPorMil(valor decimal.Decimal, tarjeta *Tarjeta) decimal.Decimal {
	if tarjeta != nil && tarjeta.CuatroPorMil == CuatroPorMilActivo {
		return valor.Mul(decimal.NewFromInt(4)).Div(decimal.NewFromInt(1000)).Round(2)
	}
	return decimal.Zero
}
