package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MovimientoDinero carries the fields common to the three money-movement
// records (cargos no registrados, devoluciones y recepciones de pago): a
// client, an optional card, a value and its "4 por mil" surcharge. The
// surcharge and the total are recomputed whenever valor or the card change.
type MovimientoDinero struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UsuarioID    *uuid.UUID      `gorm:"type:uuid" json:"usuario"`
	ClienteID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"cliente"`
	TarjetaID    *uuid.UUID      `gorm:"type:uuid;index" json:"tarjeta"`
	Observacion  *string         `json:"observacion"`
	Valor        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"valor"`
	CuatroPorMil decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"cuatro_por_mil"`
	Total        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total"`
	Fecha        time.Time       `gorm:"type:date;not null;index" json:"fecha"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	Usuario *Usuario `gorm:"foreignKey:UsuarioID" json:"usuario_detalle,omitempty"`
	Cliente *Cliente `gorm:"foreignKey:ClienteID" json:"cliente_detalle,omitempty"`
	Tarjeta *Tarjeta `gorm:"foreignKey:TarjetaID" json:"tarjeta_detalle,omitempty"`
}

// Recalcular refreshes the surcharge and total from the current valor and
// card. A nil card means no surcharge applies.
func (m *MovimientoDinero) Recalcular(tarjeta *Tarjeta) {
	m.CuatroPorMil = CalcularCuatroPorMil(m.Valor, tarjeta)
	m.Total = m.Valor.Add(m.CuatroPorMil)
}

func (m MovimientoDinero) ObtenerID() uuid.UUID { return m.ID }
func (m MovimientoDinero) EstaEliminado() bool  { return m.DeletedAt.Valid }

// Movimiento gives the wrapping entity types access to the shared fields
// through a single interface.
func (m *MovimientoDinero) Movimiento() *MovimientoDinero { return m }

// CargoNoRegistrado is a charge made outside the regular bookkeeping flow.
type CargoNoRegistrado struct {
	MovimientoDinero
}

func (CargoNoRegistrado) TableName() string      { return "cargos_no_registrados" }
func (CargoNoRegistrado) NombreEntidad() string  { return "cargo_no_registrado" }

// Devolucion is a refund issued to a client.
type Devolucion struct {
	MovimientoDinero
}

func (Devolucion) TableName() string     { return "devoluciones" }
func (Devolucion) NombreEntidad() string { return "devolucion" }

// RecepcionPago is a payment received from a client.
type RecepcionPago struct {
	MovimientoDinero
}

func (RecepcionPago) TableName() string     { return "recepciones_pago" }
func (RecepcionPago) NombreEntidad() string { return "recepcion_pago" }
