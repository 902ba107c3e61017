package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CrearGastoRequest struct {
	Nombre      string `json:"nombre"      validate:"required"`
	Descripcion string `json:"descripcion" validate:"required"`
}

type ActualizarGastoRequest struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

// ─── Relaciones gasto ↔ tarjeta ──────────────────────────────────────────────

type CrearGastoRelacionRequest struct {
	Gasto       uuid.UUID       `json:"gasto"   validate:"required"`
	Tarjeta     uuid.UUID       `json:"tarjeta" validate:"required"`
	Valor       decimal.Decimal `json:"valor"   validate:"required"`
	Observacion *string         `json:"observacion"`
	Fecha       string          `json:"fecha"   validate:"required"`
}

type ActualizarGastoRelacionRequest struct {
	Gasto       *uuid.UUID       `json:"gasto"`
	Tarjeta     *uuid.UUID       `json:"tarjeta"`
	Valor       *decimal.Decimal `json:"valor"`
	Observacion *string          `json:"observacion"`
	Fecha       *string          `json:"fecha"`
}
