package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	FullName    string   `json:"fullName" validate:"required,max=200"`
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=6,max=72"`
	Role        string   `json:"role,omitempty" validate:"omitempty,oneof=admin user"` // default user
	Permissions []string `json:"permissions,omitempty"`
	Status      string   `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// UpdateUserRequest actualización parcial. Si viene password se vuelve a hashear.
// permissions nil = no se toca; [] = se vacía.
type UpdateUserRequest struct {
	FullName    *string  `json:"fullName,omitempty" validate:"omitnil,min=1,max=200"`
	Email       *string  `json:"email,omitempty" validate:"omitnil,email"`
	Password    *string  `json:"password,omitempty" validate:"omitnil,min=6,max=72"`
	Role        *string  `json:"role,omitempty" validate:"omitnil,oneof=admin user"`
	Permissions []string `json:"permissions,omitempty"`
	Status      *string  `json:"status,omitempty" validate:"omitnil,oneof=active inactive"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          string     `json:"id"`
	FullName    string     `json:"fullName"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Permissions []string   `json:"permissions"`
	Status      string     `json:"status"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// UserListResponse respuesta paginada de GET /users.
type UserListResponse struct {
	Data []UserResponse `json:"data"`
	Meta PageMeta       `json:"meta"`
}

// UserQuery filtros de GET /users.
type UserQuery struct {
	PageRequest
	Search string `query:"search"`
	Role   string `query:"role"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NavAction entrada del menú de navegación. Permission vacío = visible para cualquier usuario autenticado.
type NavAction struct {
	Key        string `json:"key"`
	Label      string `json:"label"`
	Path       string `json:"path"`
	Permission string `json:"permission,omitempty"`
}

// SessionResponse salida de GET /auth/me.
type SessionResponse struct {
	UserID      string   `json:"userId"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}
