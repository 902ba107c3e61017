package dto

type CrearEtiquetaRequest struct {
	Nombre string `json:"nombre" validate:"required"`
	Color  string `json:"color"`
}

type ActualizarEtiquetaRequest struct {
	Nombre *string `json:"nombre"`
	Color  *string `json:"color"`
}
