package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken error único para cualquier fallo de verificación (firma, expiración, formato).
var ErrInvalidToken = errors.New("jwt: token inválido")

// Claims incluye los claims estándar JWT más los campos propios de la sesión.
// Role y Permissions viajan en el token para que el middleware y la navegación decidan sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	Email       string   `json:"email"`
	Role        string   `json:"role"` // "admin" | "user"
	Permissions []string `json:"permissions,omitempty"`
}

// UserID devuelve el subject del token (id del usuario).
func (c *Claims) UserID() string {
	if c == nil {
		return ""
	}
	return c.Subject
}

// HasPermission indica si el token incluye el permiso dado.
func (c *Claims) HasPermission(p string) bool {
	if c == nil {
		return false
	}
	for _, have := range c.Permissions {
		if have == p {
			return true
		}
	}
	return false
}

// Subject datos del usuario que se codifican en el token.
type Subject struct {
	UserID      string
	Email       string
	Role        string
	Permissions []string
}

// Generate genera un token HS256 firmado con {email, sub, role, permissions}.
func Generate(secret string, sub Subject, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sub.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Email:       sub.Email,
		Role:        sub.Role,
		Permissions: sub.Permissions,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve sus claims.
// Cualquier error (firma, expiración, algoritmo, subject vacío) se devuelve envuelto en ErrInvalidToken.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: claims inválidos", ErrInvalidToken)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: subject vacío", ErrInvalidToken)
	}
	return claims, nil
}
