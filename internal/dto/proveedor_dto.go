package dto

import "github.com/google/uuid"

type CrearProveedorRequest struct {
	Nombre   string     `json:"nombre" validate:"required"`
	Color    string     `json:"color"`
	Etiqueta *uuid.UUID `json:"etiqueta"`
}

type ActualizarProveedorRequest struct {
	Nombre   *string    `json:"nombre"`
	Color    *string    `json:"color"`
	Etiqueta *uuid.UUID `json:"etiqueta"`
}
