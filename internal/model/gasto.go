package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Gasto is an expense concept; the individual card charges hang off it as
// GastoRelacion rows.
type Gasto struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      *uuid.UUID     `gorm:"type:uuid" json:"user"`
	Nombre      string         `gorm:"type:varchar(100);not null;index" json:"nombre"`
	Descripcion string         `gorm:"type:varchar(255);not null" json:"descripcion"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	User       *Usuario        `gorm:"foreignKey:UserID" json:"user_detalle,omitempty"`
	Relaciones []GastoRelacion `gorm:"foreignKey:GastoID" json:"-"`
}

func (Gasto) TableName() string { return "gastos" }

func (g Gasto) ObtenerID() uuid.UUID { return g.ID }
func (g Gasto) EstaEliminado() bool  { return g.DeletedAt.Valid }
func (Gasto) NombreEntidad() string  { return "gasto" }

// GastoRelacion links an expense to the card it was paid with. It carries the
// same surcharge arithmetic as the money movements.
type GastoRelacion struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UsuarioID    *uuid.UUID      `gorm:"type:uuid" json:"usuario"`
	GastoID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"gasto"`
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
	Gasto   *Gasto   `gorm:"foreignKey:GastoID" json:"gasto_detalle,omitempty"`
	Tarjeta *Tarjeta `gorm:"foreignKey:TarjetaID" json:"tarjeta_detalle,omitempty"`
}

func (GastoRelacion) TableName() string { return "gasto_relaciones" }

func (r GastoRelacion) ObtenerID() uuid.UUID { return r.ID }
func (r GastoRelacion) EstaEliminado() bool  { return r.DeletedAt.Valid }
func (GastoRelacion) NombreEntidad() string  { return "gasto_relacion" }

// Recalcular refreshes the surcharge and total from the current valor and card.
func (r *GastoRelacion) Recalcular(tarjeta *Tarjeta) {
	r.CuatroPorMil = CalcularCuatroPorMil(r.Valor, tarjeta)
	r.Total = r.Valor.Add(r.CuatroPorMil)
}
