package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/marketplace-admin-api/internal/application/auth"
	"github.com/jhoicas/marketplace-admin-api/internal/application/dto"
	"github.com/jhoicas/marketplace-admin-api/internal/application/usecase"
	"github.com/jhoicas/marketplace-admin-api/internal/domain"
	"github.com/jhoicas/marketplace-admin-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/marketplace-admin-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

type fixture struct {
	auth  *auth.AuthUseCase
	users *usecase.UserUseCase
	repo  *memory.UserRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	repo := memory.NewUserRepository()
	f := fixture{
		auth:  auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "test"}),
		users: usecase.NewUserUseCase(repo, usecase.WithBcryptCost(bcrypt.MinCost)),
		repo:  repo,
	}
	return f
}

func (f fixture) createUser(t *testing.T, email, status string) *dto.UserResponse {
	t.Helper()
	u, err := f.users.Create(context.Background(), dto.CreateUserRequest{
		FullName:    "Ana Pérez",
		Email:       email,
		Password:    "secreto1",
		Status:      status,
		Permissions: []string{"orders:read"},
	})
	require.NoError(t, err)
	return u
}

func TestValidateCredentials_FallosIndistinguibles(t *testing.T) {
	f := newFixture(t)
	f.createUser(t, "ana@example.com", "")
	ctx := context.Background()

	badPass, errBadPass := f.auth.ValidateCredentials(ctx, "ana@example.com", "incorrecta")
	noUser, errNoUser := f.auth.ValidateCredentials(ctx, "nadie@example.com", "secreto1")

	assert.Nil(t, badPass)
	assert.NoError(t, errBadPass)
	assert.Nil(t, noUser)
	assert.NoError(t, errNoUser)

	ok, err := f.auth.ValidateCredentials(ctx, "ANA@example.com", "secreto1")
	require.NoError(t, err)
	require.NotNil(t, ok)
	assert.Equal(t, "ana@example.com", ok.Email)
}

func TestLogin_EmiteTokenYRegistraLastLogin(t *testing.T) {
	f := newFixture(t)
	u := f.createUser(t, "ana@example.com", "")
	ctx := context.Background()

	out, err := f.auth.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "secreto1"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, u.ID, out.User.ID)
	assert.NotNil(t, out.User.LastLogin)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID())
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, []string{"orders:read"}, claims.Permissions)

	stored, _ := f.repo.GetByID(ctx, u.ID)
	assert.NotNil(t, stored.LastLogin)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	f := newFixture(t)
	f.createUser(t, "ana@example.com", "")

	_, err := f.auth.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.auth.Login(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo_Forbidden(t *testing.T) {
	f := newFixture(t)
	f.createUser(t, "ana@example.com", "inactive")

	_, err := f.auth.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestValidateToken(t *testing.T) {
	f := newFixture(t)
	u := f.createUser(t, "ana@example.com", "")
	ctx := context.Background()
	out, err := f.auth.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "secreto1"})
	require.NoError(t, err)

	claims, err := f.auth.ValidateToken(ctx, out.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID())

	_, err = f.auth.ValidateToken(ctx, "no.es.token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// usuario desactivado después de emitir el token
	inactive := "inactive"
	_, err = f.users.Update(ctx, u.ID, dto.UpdateUserRequest{Status: &inactive})
	require.NoError(t, err)
	_, err = f.auth.ValidateToken(ctx, out.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// usuario eliminado
	require.NoError(t, f.users.Delete(ctx, u.ID))
	_, err = f.auth.ValidateToken(ctx, out.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestValidateToken_RolActualizadoSeRefleja(t *testing.T) {
	f := newFixture(t)
	u := f.createUser(t, "ana@example.com", "")
	ctx := context.Background()
	out, err := f.auth.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "secreto1"})
	require.NoError(t, err)

	admin := "admin"
	_, err = f.users.Update(ctx, u.ID, dto.UpdateUserRequest{Role: &admin})
	require.NoError(t, err)

	claims, err := f.auth.ValidateToken(ctx, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}
