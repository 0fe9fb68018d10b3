package jwt_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/marketplace-admin-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "marketplace-admin-test"
)

func testSubject() pkgjwt.Subject {
	return pkgjwt.Subject{
		UserID:      "00000000-0000-0000-0000-000000000001",
		Email:       "ana@example.com",
		Role:        "user",
		Permissions: []string{"orders:read", "tasks:write"},
	}
}

func TestJWT_GenerateAndParse_ConClaims(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSubject(), testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, "00000000-0000-0000-0000-000000000001", claims.UserID())
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.True(t, claims.HasPermission("orders:read"))
	assert.False(t, claims.HasPermission("users:write"))
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSubject(), testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkgjwt.ErrInvalidToken), "todo fallo se normaliza a ErrInvalidToken")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSubject(), testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestJWT_TokenMalformado_RetornaError(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestJWT_SinSubject_RetornaError(t *testing.T) {
	sub := testSubject()
	sub.UserID = ""
	tok, err := pkgjwt.Generate(testSecret, sub, testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestJWT_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testSubject(), testIssuer, 60)
	assert.Error(t, err)
}
