package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/marketplace-admin-api/internal/application/dto"
	"github.com/jhoicas/marketplace-admin-api/internal/application/usecase"
	"github.com/jhoicas/marketplace-admin-api/internal/domain"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/repository"
	"github.com/jhoicas/marketplace-admin-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// dummyHash se compara cuando el email no existe, para que ambos caminos tarden lo mismo.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("marketplace-admin-dummy"), bcrypt.DefaultCost)

// AuthUseCase casos de uso de autenticación: credenciales, login y validación de token.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// ValidateCredentials devuelve el usuario (sin password) si email/password coinciden.
// Email inexistente y password incorrecto devuelven ambos (nil, nil): no se distingue cuál falló.
func (uc *AuthUseCase) ValidateCredentials(ctx context.Context, email, password string) (*dto.UserResponse, error) {
	user, err := uc.checkCredentials(ctx, email, password)
	if err != nil || user == nil {
		return nil, err
	}
	return usecase.ToUserResponse(user), nil
}

func (uc *AuthUseCase) checkCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil
	}
	return user, nil
}

// Login verifica email/password, genera JWT, registra lastLogin y retorna token + usuario.
// Credenciales inválidas -> ErrUnauthorized; usuario inactivo -> ErrForbidden.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.checkCredentials(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive() {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Subject{
		UserID:      user.ID,
		Email:       user.Email,
		Role:        user.Role,
		Permissions: user.Permissions,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	at := time.Now().UTC().Truncate(time.Millisecond)
	if err := uc.userRepo.TouchLastLogin(ctx, user.ID, at); err != nil {
		return nil, err
	}
	user.LastLogin = &at
	return &dto.LoginResponse{
		Token: token,
		User:  *usecase.ToUserResponse(user),
	}, nil
}

// ValidateToken verifica firma y expiración, y vuelve a leer el usuario: falla si ya no existe
// o no está activo. Rol y permisos se toman del usuario actual, no del token.
// Cualquier fallo se normaliza a domain.ErrUnauthorized.
func (uc *AuthUseCase) ValidateToken(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, domain.ErrUnauthorized
	}
	if user == nil || !user.IsActive() {
		return nil, domain.ErrUnauthorized
	}
	claims.Email = user.Email
	claims.Role = user.Role
	claims.Permissions = user.Permissions
	return claims, nil
}
