package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/marketplace-admin-api/internal/application/auth"
	"github.com/jhoicas/marketplace-admin-api/internal/application/dto"
)

// AuthHandler maneja login y la sesión actual.
type AuthHandler struct {
	uc         *auth.AuthUseCase
	navigation []dto.NavAction
}

// NewAuthHandler construye el handler de auth con el menú completo del panel.
func NewAuthHandler(uc *auth.AuthUseCase, navigation []dto.NavAction) *AuthHandler {
	return &AuthHandler{uc: uc, navigation: navigation}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Sesión actual
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims := GetClaims(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeUnauthorized, Message: "no autorizado"})
	}
	perms := claims.Permissions
	if perms == nil {
		perms = []string{}
	}
	return c.JSON(dto.SessionResponse{
		UserID:      claims.UserID(),
		Email:       claims.Email,
		Role:        claims.Role,
		Permissions: perms,
	})
}

// Navigation godoc
// @Summary      Menú visible para la sesión actual
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.NavAction
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/navigation [get]
func (h *AuthHandler) Navigation(c *fiber.Ctx) error {
	claims := GetClaims(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeUnauthorized, Message: "no autorizado"})
	}
	return c.JSON(auth.VisibleActions(claims, h.navigation))
}
