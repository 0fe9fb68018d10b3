package auth

import (
	"strings"

	"github.com/jhoicas/marketplace-admin-api/internal/application/dto"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-admin-api/pkg/jwt"
)

// Comodines de permisos: "*:*" todo, "orders:*" todas las acciones de orders.
const (
	wildcardAll          = "*"
	permissionSuperAdmin = "*:*"
)

// DefaultNavigation menú completo del panel, en orden de presentación.
var DefaultNavigation = []dto.NavAction{
	{Key: "dashboard", Label: "Dashboard", Path: "/dashboard"},
	{Key: "accounts", Label: "Accounts", Path: "/accounts", Permission: "accounts:read"},
	{Key: "products", Label: "Products", Path: "/products", Permission: "products:read"},
	{Key: "orders", Label: "Orders", Path: "/orders", Permission: "orders:read"},
	{Key: "tasks", Label: "Tasks", Path: "/tasks", Permission: "tasks:read"},
	{Key: "users", Label: "Users", Path: "/users", Permission: "users:read"},
	{Key: "stats", Label: "Statistics", Path: "/stats", Permission: "stats:read"},
}

// VisibleActions deriva el menú visible a partir de los claims de la sesión.
// Admin ve todo; el resto ve las acciones sin permiso requerido o cuyo permiso posee.
// Función pura: no modifica allActions y conserva su orden.
func VisibleActions(claims *jwt.Claims, allActions []dto.NavAction) []dto.NavAction {
	out := make([]dto.NavAction, 0, len(allActions))
	if claims == nil {
		return out
	}
	for _, a := range allActions {
		if claims.Role == entity.RoleAdmin || a.Permission == "" || holds(claims.Permissions, a.Permission) {
			out = append(out, a)
		}
	}
	return out
}

func holds(have []string, required string) bool {
	for _, p := range have {
		if permissionMatches(p, required) {
			return true
		}
	}
	return false
}

func permissionMatches(have, required string) bool {
	if have == permissionSuperAdmin || have == required {
		return true
	}
	res, act, ok := strings.Cut(have, ":")
	if !ok || act != wildcardAll {
		return false
	}
	reqRes, _, _ := strings.Cut(required, ":")
	return res == reqRes
}
