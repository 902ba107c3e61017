package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tipos de documento de identidad.
const (
	DocumentoCC  = "CC"  // Cédula de Ciudadanía
	DocumentoCE  = "CE"  // Cédula de Extranjería
	DocumentoNIT = "NIT" // Número de Identificación Tributaria
	DocumentoPAS = "PAS" // Pasaporte
)

func TipoDocumentoValido(tipo string) bool {
	switch tipo {
	case DocumentoCC, DocumentoCE, DocumentoNIT, DocumentoPAS:
		return true
	}
	return false
}

// EtapaCotizacion is the single ordered stage of the quote workflow. The
// legacy API exposed four independent "0"/"1" flags; storing one ordinal
// makes illegal multi-flag states unrepresentable, and the flags are derived
// at serialization time for wire compatibility.
type EtapaCotizacion int

const (
	EtapaCotizador EtapaCotizacion = iota
	EtapaTramite
	EtapaConfirmacion
	EtapaCargarPdf
)

// Nombre is the display name used in transition messages.
func (e EtapaCotizacion) Nombre() string {
	switch e {
	case EtapaCotizador:
		return "Cotizador"
	case EtapaTramite:
		return "Trámite"
	case EtapaConfirmacion:
		return "Confirmación"
	case EtapaCargarPdf:
		return "Cargaro"
	}
	return "desconocida"
}

// PasosAvance maps the request's `paso` value to the stage it advances into.
// "cargaro" keeps its historical spelling.
var PasosAvance = map[string]EtapaCotizacion{
	"tramite":      EtapaTramite,
	"confirmacion": EtapaConfirmacion,
	"cargaro":      EtapaCargarPdf,
}

// PasosReversion maps the request's `paso` value to the stage it reverts into.
var PasosReversion = map[string]EtapaCotizacion{
	"cotizador":    EtapaCotizador,
	"tramite":      EtapaTramite,
	"confirmacion": EtapaConfirmacion,
}

// Cotizador is a vehicle-paperwork quote moving through the four-stage
// workflow cotizador → tramite → confirmacion → cargar_pdf.
type Cotizador struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UsuarioID       *uuid.UUID      `gorm:"type:uuid" json:"usuario"`
	ClienteID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"cliente"`
	EtiquetaID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"etiqueta"`
	PrecioClienteID uuid.UUID       `gorm:"type:uuid;not null" json:"precio_cliente"`
	Descripcion     string          `gorm:"not null" json:"descripcion"`
	PrecioLay       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio_lay"`
	Comision        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"comision"`

	Placa     string `gorm:"type:varchar(20);not null" json:"placa"`
	Clindraje string `gorm:"type:varchar(10);not null" json:"clindraje"`
	Modelo    string `gorm:"type:varchar(4);not null" json:"modelo"`
	Chasis    string `gorm:"type:varchar(50);not null" json:"chasis"`

	TipoDocumento   string `gorm:"type:varchar(20);not null;default:'CC'" json:"tipo_documento"`
	NumeroDocumento string `gorm:"type:varchar(50);not null" json:"numero_documento"`
	NombreCompleto  string `gorm:"not null" json:"nombre_completo"`
	Telefono        string `gorm:"type:varchar(20);not null" json:"telefono"`
	Correo          string `gorm:"not null" json:"correo"`
	Direccion       string `gorm:"not null" json:"direccion"`

	Etapa EtapaCotizacion `gorm:"not null;default:0" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	Usuario       *Usuario        `gorm:"foreignKey:UsuarioID" json:"usuario_detalle,omitempty"`
	Cliente       *Cliente        `gorm:"foreignKey:ClienteID" json:"cliente_detalle,omitempty"`
	Etiqueta      *Etiqueta       `gorm:"foreignKey:EtiquetaID" json:"etiqueta_detalle,omitempty"`
	PrecioCliente *PrecioCliente  `gorm:"foreignKey:PrecioClienteID" json:"precio_cliente_detalle,omitempty"`
	Pagos         []CotizadorPago `gorm:"foreignKey:CotizadorID" json:"-"`
}

func (Cotizador) TableName() string { return "cotizadores" }

func (c Cotizador) ObtenerID() uuid.UUID { return c.ID }
func (c Cotizador) EstaEliminado() bool  { return c.DeletedAt.Valid }
func (Cotizador) NombreEntidad() string  { return "cotizador" }

func (c Cotizador) flag(e EtapaCotizacion) string {
	if c.Etapa == e {
		return "1"
	}
	return "0"
}

// MarshalJSON derives the four legacy stage flags from Etapa.
func (c Cotizador) MarshalJSON() ([]byte, error) {
	type alias Cotizador
	return json.Marshal(struct {
		alias
		CotizadorEstado    string `json:"cotizador_estado"`
		TramiteEstado      string `json:"tramite_estado"`
		ConfirmacionEstado string `json:"confirmacion_estado"`
		CargarPdfEstado    string `json:"cargar_pdf_estado"`
	}{
		alias:              alias(c),
		CotizadorEstado:    c.flag(EtapaCotizador),
		TramiteEstado:      c.flag(EtapaTramite),
		ConfirmacionEstado: c.flag(EtapaConfirmacion),
		CargarPdfEstado:    c.flag(EtapaCargarPdf),
	})
}

// CotizadorPago is a payment registered against a quote.
type CotizadorPago struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CotizadorID uuid.UUID       `gorm:"type:uuid;not null;index" json:"cotizador_id"`
	PrecioLay   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio_lay"`
	Comision    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"comision"`
	FechaPago   time.Time       `gorm:"type:date;not null" json:"fecha_pago"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"deleted_at"`
}

func (CotizadorPago) TableName() string { return "cotizador_pagos" }

func (p CotizadorPago) ObtenerID() uuid.UUID { return p.ID }
func (p CotizadorPago) EstaEliminado() bool  { return p.DeletedAt.Valid }
func (CotizadorPago) NombreEntidad() string  { return "cotizador_pago" }
