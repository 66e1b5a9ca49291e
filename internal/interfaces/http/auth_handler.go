package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Piscinas-api/internal/application/auth"
	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/domain"
)

// AuthHandler maneja las peticiones HTTP de autenticación.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	oauthUC *auth.OAuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, oauthUC *auth.OAuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc, oauthUC: oauthUC}
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if !parseBody(c, &in) {
		return nil
	}
	user, err := h.uc.RegisterUser(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login POST /api/login (alias POST /api/auth/login)
//
// Los fallos se traducen a códigos de producto conocidos; un código no
// reconocido jamás llega crudo al cliente (auth.MessageForErrorCode).
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if !parseBody(c, &in) {
		return nil
	}
	resp, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondLoginError(c, err)
	}
	return c.JSON(resp)
}

// Session GET /api/auth/session
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	resp, err := h.uc.Session(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// PrepareOAuth POST /api/auth/prepare-oauth
func (h *AuthHandler) PrepareOAuth(c *fiber.Ctx) error {
	return c.JSON(h.oauthUC.Prepare())
}

// oauthCallbackRequest cuerpo del callback del proveedor de identidad.
type oauthCallbackRequest struct {
	State string `json:"state" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// GoogleCallback POST /api/auth/google
func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	var in oauthCallbackRequest
	if !parseBody(c, &in) {
		return nil
	}
	resp, err := h.oauthUC.Complete(c.Context(), in.State, in.Email)
	if err != nil {
		return respondLoginError(c, err)
	}
	return c.JSON(resp)
}

// respondLoginError traduce los errores de login al mensaje de producto.
func respondLoginError(c *fiber.Ctx, err error) error {
	status := fiber.StatusUnauthorized
	var code string
	switch {
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		code = "invalid-credentials"
	case errors.Is(err, domain.ErrForbidden):
		code = "account-suspended"
		status = fiber.StatusForbidden
	case errors.Is(err, domain.ErrNoOrganization):
		code = "no-organization"
		status = fiber.StatusForbidden
	default:
		return respondError(c, err)
	}
	return c.Status(status).JSON(auth.MessageForErrorCode(code))
}
