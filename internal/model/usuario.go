package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Roles del sistema. SuperAdmin keeps its historical capitalization.
const (
	RolSuperAdmin = "SuperAdmin"
	RolAdmin      = "admin"
	RolAuxiliar   = "auxiliar"
	RolVendedor   = "vendedor"
	RolContador   = "contador"
	RolCliente    = "cliente"
)

// RolValido reports whether rol is one of the known roles.
func RolValido(rol string) bool {
	switch rol {
	case RolSuperAdmin, RolAdmin, RolAuxiliar, RolVendedor, RolContador, RolCliente:
		return true
	}
	return false
}

// Usuario stores system users with role-based access. Users are deactivated
// (IsActive=false) rather than soft-deleted.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"type:varchar(20);not null;default:'admin'" json:"role"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"date_joined"`
	UpdatedAt    time.Time `json:"-"`
}

func (Usuario) TableName() string { return "usuarios" }

// NombreCompleto joins first and last name the way the serializers expose it.
func (u Usuario) NombreCompleto() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
