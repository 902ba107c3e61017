package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovimientoRequest creates any of the three money movements (cargos no
// registrados, devoluciones, recepciones de pago). The surcharge is never
// accepted from the client; it is computed from valor and the card.
type MovimientoRequest struct {
	Cliente     uuid.UUID       `json:"cliente" validate:"required"`
	Tarjeta     *uuid.UUID      `json:"tarjeta" validate:"required"`
	Observacion *string         `json:"observacion"`
	Valor       decimal.Decimal `json:"valor"   validate:"required"`
	Fecha       string          `json:"fecha"   validate:"required"`
}

type ActualizarMovimientoRequest struct {
	Cliente     *uuid.UUID       `json:"cliente"`
	Tarjeta     *uuid.UUID       `json:"tarjeta"`
	Observacion *string          `json:"observacion"`
	Valor       *decimal.Decimal `json:"valor"`
	Fecha       *string          `json:"fecha"`
}

// ─── Ajustes de saldo ────────────────────────────────────────────────────────

type CrearAjusteRequest struct {
	Cliente     uuid.UUID       `json:"cliente" validate:"required"`
	Valor       decimal.Decimal `json:"valor"   validate:"required"`
	Observacion *string         `json:"observacion"`
	Fecha       string          `json:"fecha"   validate:"required"`
}

type ActualizarAjusteRequest struct {
	Cliente     *uuid.UUID       `json:"cliente"`
	Valor       *decimal.Decimal `json:"valor"`
	Observacion *string          `json:"observacion"`
	Fecha       *string          `json:"fecha"`
}

// ─── Utilidades ocasionales ──────────────────────────────────────────────────

type CrearUtilidadRequest struct {
	Tarjeta     uuid.UUID       `json:"tarjeta" validate:"required"`
	Valor       decimal.Decimal `json:"valor"   validate:"required"`
	Observacion *string         `json:"observacion"`
	Fecha       string          `json:"fecha"   validate:"required"`
}

type ActualizarUtilidadRequest struct {
	Tarjeta     *uuid.UUID       `json:"tarjeta"`
	Valor       *decimal.Decimal `json:"valor"`
	Observacion *string          `json:"observacion"`
	Fecha       *string          `json:"fecha"`
}
