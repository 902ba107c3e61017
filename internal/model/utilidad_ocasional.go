package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UtilidadOcasional is an occasional income credited to a card.
type UtilidadOcasional struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UsuarioID    *uuid.UUID      `gorm:"type:uuid" json:"usuario"`
	TarjetaID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"tarjeta"`
	Valor        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"valor"`
	Observacion  *string         `json:"observacion"`
	Fecha        time.Time       `gorm:"not null;index" json:"fecha"`
	CuatroPorMil decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"cuatro_por_mil"`
	Total        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"deleted_at"`

	Usuario *Usuario `gorm:"foreignKey:UsuarioID" json:"usuario_detalle,omitempty"`
	Tarjeta *Tarjeta `gorm:"foreignKey:TarjetaID" json:"tarjeta_detalle,omitempty"`
}

func (UtilidadOcasional) TableName() string { return "utilidad_ocasional" }

func (u UtilidadOcasional) ObtenerID() uuid.UUID { return u.ID }
func (u UtilidadOcasional) EstaEliminado() bool  { return u.DeletedAt.Valid }
func (UtilidadOcasional) NombreEntidad() string  { return "utilidad_ocasional" }

// Recalcular refreshes the surcharge and total from the current valor and card.
func (u *UtilidadOcasional) Recalcular(tarjeta *Tarjeta) {
	u.CuatroPorMil = CalcularCuatroPorMil(u.Valor, tarjeta)
	u.Total = u.Valor.Add(u.CuatroPorMil)
}
