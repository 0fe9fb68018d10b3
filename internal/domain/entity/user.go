package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Estados de User. Sólo los usuarios activos pueden iniciar sesión o usar su token.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un operador del panel.
type User struct {
	ID           string
	FullName     string
	Email        string // único, se guarda en minúsculas
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, user
	Permissions  []string
	Status       string // active, inactive
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive indica si el usuario puede autenticarse.
func (u *User) IsActive() bool {
	return u != nil && (u.Status == "" || u.Status == UserStatusActive)
}

// IsAdmin indica si el usuario tiene rol admin.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// DedupePermissions quita duplicados conservando la primera aparición y el orden.
// Los valores vacíos se descartan.
func DedupePermissions(perms []string) []string {
	out := make([]string, 0, len(perms))
	seen := make(map[string]struct{}, len(perms))
	for _, p := range perms {
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
