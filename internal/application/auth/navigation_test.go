package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/marketplace-admin-api/internal/application/auth"
	"github.com/jhoicas/marketplace-admin-api/internal/application/dto"
	pkgjwt "github.com/jhoicas/marketplace-admin-api/pkg/jwt"
)

func keys(actions []dto.NavAction) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.Key)
	}
	return out
}

func TestVisibleActions_AdminVeTodo(t *testing.T) {
	got := auth.VisibleActions(&pkgjwt.Claims{Role: "admin"}, auth.DefaultNavigation)
	assert.Equal(t, keys(auth.DefaultNavigation), keys(got))
}

func TestVisibleActions_PorPermisos(t *testing.T) {
	claims := &pkgjwt.Claims{Role: "user", Permissions: []string{"orders:read", "tasks:*"}}
	got := auth.VisibleActions(claims, auth.DefaultNavigation)
	assert.Equal(t, []string{"dashboard", "orders", "tasks"}, keys(got))
}

func TestVisibleActions_SuperPermiso(t *testing.T) {
	claims := &pkgjwt.Claims{Role: "user", Permissions: []string{"*:*"}}
	got := auth.VisibleActions(claims, auth.DefaultNavigation)
	assert.Len(t, got, len(auth.DefaultNavigation))
}

func TestVisibleActions_SinClaims(t *testing.T) {
	assert.Empty(t, auth.VisibleActions(nil, auth.DefaultNavigation))
}

func TestVisibleActions_NoModificaEntrada(t *testing.T) {
	all := []dto.NavAction{{Key: "a", Permission: "x:read"}, {Key: "b"}}
	_ = auth.VisibleActions(&pkgjwt.Claims{Role: "user"}, all)
	assert.Equal(t, []dto.NavAction{{Key: "a", Permission: "x:read"}, {Key: "b"}}, all)
}
