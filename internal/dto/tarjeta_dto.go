package dto

import "github.com/google/uuid"

type CrearTarjetaRequest struct {
	Numero       string     `json:"numero"         validate:"required"`
	Titular      string     `json:"titular"        validate:"required"`
	Descripcion  string     `json:"descripcion"`
	CuatroPorMil string     `json:"cuatro_por_mil" validate:"omitempty,oneof=0 1"`
	Usuario      *uuid.UUID `json:"usuario"`
}

type ActualizarTarjetaRequest struct {
	Numero       *string    `json:"numero"`
	Titular      *string    `json:"titular"`
	Descripcion  *string    `json:"descripcion"`
	CuatroPorMil *string    `json:"cuatro_por_mil" validate:"omitempty,oneof=0 1"`
	Usuario      *uuid.UUID `json:"usuario"`
}
