package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Cliente ─────────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	Nombre            string     `json:"nombre"             validate:"required"`
	Color             string     `json:"color"`
	Telefono          *string    `json:"telefono"`
	Direccion         *string    `json:"direccion"`
	MedioComunicacion string     `json:"medio_comunicacion" validate:"omitempty,oneof=email whatsapp"`
	Usuario           *uuid.UUID `json:"usuario"`
}

type ActualizarClienteRequest struct {
	Nombre            *string    `json:"nombre"`
	Color             *string    `json:"color"`
	Telefono          *string    `json:"telefono"`
	Direccion         *string    `json:"direccion"`
	MedioComunicacion *string    `json:"medio_comunicacion" validate:"omitempty,oneof=email whatsapp"`
	Usuario           *uuid.UUID `json:"usuario"`
}

// ─── Precios del cliente ─────────────────────────────────────────────────────

type CrearPrecioClienteRequest struct {
	Descripcion string          `json:"descripcion" validate:"required"`
	Precio      decimal.Decimal `json:"precio"      validate:"required"`
	Comision    decimal.Decimal `json:"comision"`
}

type ActualizarPrecioClienteRequest struct {
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	Comision    *decimal.Decimal `json:"comision"`
}
