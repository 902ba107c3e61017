package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearUsuarioRequest struct {
	Username  string `json:"username"   validate:"required"`
	Password  string `json:"password"   validate:"required,min=4"`
	Email     string `json:"email"      validate:"omitempty,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

type ActualizarUsuarioRequest struct {
	Username  *string `json:"username"`
	Password  *string `json:"password"   validate:"omitempty,min=4"`
	Email     *string `json:"email"      validate:"omitempty,email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      *string `json:"role"`
}

// FiltroUsuariosQuery is bound from the query string of GET /api/user/users/.
type FiltroUsuariosQuery struct {
	Role     string `form:"role"`
	IsActive string `form:"is_active"`
	Search   string `form:"search"`
}
