package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Cotizador ───────────────────────────────────────────────────────────────

type CrearCotizadorRequest struct {
	Cliente       uuid.UUID       `json:"cliente"        validate:"required"`
	Etiqueta      uuid.UUID       `json:"etiqueta"       validate:"required"`
	PrecioCliente uuid.UUID       `json:"precio_cliente" validate:"required"`
	Descripcion   string          `json:"descripcion"    validate:"required"`
	PrecioLay     decimal.Decimal `json:"precio_lay"     validate:"required"`
	Comision      decimal.Decimal `json:"comision"       validate:"required"`

	Placa     string `json:"placa"     validate:"required"`
	Clindraje string `json:"clindraje" validate:"required"`
	Modelo    string `json:"modelo"    validate:"required,len=4"`
	Chasis    string `json:"chasis"    validate:"required"`

	TipoDocumento   string `json:"tipo_documento"   validate:"omitempty,oneof=CC CE NIT PAS"`
	NumeroDocumento string `json:"numero_documento" validate:"required"`
	NombreCompleto  string `json:"nombre_completo"  validate:"required"`
	Telefono        string `json:"telefono"         validate:"required"`
	Correo          string `json:"correo"           validate:"required,email"`
	Direccion       string `json:"direccion"        validate:"required"`
}

type ActualizarCotizadorRequest struct {
	Cliente       *uuid.UUID       `json:"cliente"`
	Etiqueta      *uuid.UUID       `json:"etiqueta"`
	PrecioCliente *uuid.UUID       `json:"precio_cliente"`
	Descripcion   *string          `json:"descripcion"`
	PrecioLay     *decimal.Decimal `json:"precio_lay"`
	Comision      *decimal.Decimal `json:"comision"`

	Placa     *string `json:"placa"`
	Clindraje *string `json:"clindraje"`
	Modelo    *string `json:"modelo"     validate:"omitempty,len=4"`
	Chasis    *string `json:"chasis"`

	TipoDocumento   *string `json:"tipo_documento" validate:"omitempty,oneof=CC CE NIT PAS"`
	NumeroDocumento *string `json:"numero_documento"`
	NombreCompleto  *string `json:"nombre_completo"`
	Telefono        *string `json:"telefono"`
	Correo          *string `json:"correo"         validate:"omitempty,email"`
	Direccion       *string `json:"direccion"`
}

// CambiarEstadoRequest names the stage to advance into (or revert to).
type CambiarEstadoRequest struct {
	Paso string `json:"paso" validate:"required"`
}

// ─── Pagos del cotizador ─────────────────────────────────────────────────────

type CrearCotizadorPagoRequest struct {
	PrecioLay decimal.Decimal `json:"precio_lay" validate:"required"`
	Comision  decimal.Decimal `json:"comision"`
	FechaPago string          `json:"fecha_pago" validate:"required"`
}

type ActualizarCotizadorPagoRequest struct {
	PrecioLay *decimal.Decimal `json:"precio_lay"`
	Comision  *decimal.Decimal `json:"comision"`
	FechaPago *string          `json:"fecha_pago"`
}

// EnviarCotizadorRequest optionally overrides the quote's own email address.
type EnviarCotizadorRequest struct {
	Correo string `json:"correo" validate:"omitempty,email"`
}
