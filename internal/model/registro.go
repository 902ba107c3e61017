package model

import "github.com/google/uuid"

// Registro is satisfied by every soft-deletable entity. NombreEntidad is the
// discriminator stored on audit rows (see Historial).
type Registro interface {
	ObtenerID() uuid.UUID
	EstaEliminado() bool
	NombreEntidad() string
}
