package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Medios de comunicación preferidos de un cliente.
const (
	MedioEmail    = "email"
	MedioWhatsapp = "whatsapp"
)

func MedioComunicacionValido(medio string) bool {
	return medio == MedioEmail || medio == MedioWhatsapp
}

// Cliente is a customer of the business. The assigned Usuario handles the
// account; CreatedBy records who registered it.
type Cliente struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Color             string         `gorm:"type:varchar(7);not null;default:'#1976d2'" json:"color"`
	Nombre            string         `gorm:"not null;index" json:"nombre"`
	Telefono          *string        `json:"telefono"`
	Direccion         *string        `json:"direccion"`
	UsuarioID         *uuid.UUID     `gorm:"type:uuid;index" json:"usuario"`
	MedioComunicacion string         `gorm:"type:varchar(10);not null;default:'email'" json:"medio_comunicacion"`
	CreatedByID       *uuid.UUID     `gorm:"type:uuid" json:"created_by"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	Usuario   *Usuario        `gorm:"foreignKey:UsuarioID" json:"usuario_detalle,omitempty"`
	CreatedBy *Usuario        `gorm:"foreignKey:CreatedByID" json:"created_by_detalle,omitempty"`
	Precios   []PrecioCliente `gorm:"foreignKey:ClienteID" json:"precios,omitempty"`
}

func (Cliente) TableName() string { return "clientes" }

func (c Cliente) ObtenerID() uuid.UUID { return c.ID }
func (c Cliente) EstaEliminado() bool  { return c.DeletedAt.Valid }
func (Cliente) NombreEntidad() string  { return "cliente" }

// PrecioCliente is a per-client price-list entry. Its lifecycle is independent
// of the parent: deleting one never touches the Cliente row.
type PrecioCliente struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClienteID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"cliente"`
	Descripcion string          `gorm:"not null" json:"descripcion"`
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio"`
	Comision    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"comision"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"deleted_at"`
}

func (PrecioCliente) TableName() string { return "precios_cliente" }

func (p PrecioCliente) ObtenerID() uuid.UUID { return p.ID }
func (p PrecioCliente) EstaEliminado() bool  { return p.DeletedAt.Valid }
func (PrecioCliente) NombreEntidad() string  { return "precio_cliente" }
