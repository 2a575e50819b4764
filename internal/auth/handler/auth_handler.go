package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kelvinmenegasse/idp-server/internal/auth/dto"
	"github.com/kelvinmenegasse/idp-server/internal/auth/service"
	autherror "github.com/kelvinmenegasse/idp-server/internal/errors"
)

type AuthHandler struct {
	authService  *service.AuthService
	tokenService service.TokenManager
}

func NewAuthHandler(authService *service.AuthService, tokenService service.TokenManager) *AuthHandler {
	return &AuthHandler{authService: authService, tokenService: tokenService}
}

func clientInfoFromCtx(c *fiber.Ctx) dto.ClientInfo {
	return dto.ClientInfo{
		IP:           c.IP(),
		Platform:     c.Get("Sec-CH-UA-Platform"),
		BrowserBrand: c.Get("Sec-CH-UA"),
		UserAgent:    string(c.Request().Header.UserAgent()),
	}
}

// StatusForError maps domain errors onto HTTP statuses.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, autherror.ErrIncorrectCredentials),
		errors.Is(err, autherror.ErrTokenNotFound):
		return fiber.StatusUnauthorized
	case errors.Is(err, autherror.ErrUsernameOrCpfExists),
		errors.Is(err, autherror.ErrUsernameExists),
		errors.Is(err, autherror.ErrCpfExists):
		return fiber.StatusConflict
	case errors.Is(err, autherror.ErrAccountNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, autherror.ErrNameRequired),
		errors.Is(err, autherror.ErrPasswordRequired),
		errors.Is(err, autherror.ErrUsernameRequired),
		errors.Is(err, autherror.ErrInvalidCPF),
		errors.Is(err, autherror.ErrInvalidParameters),
		errors.Is(err, autherror.ErrAccountHasNoEmail):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	tokens, err := h.authService.Signup(c.Context(), input, clientInfoFromCtx(c))
	if err != nil {
		return c.Status(StatusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(tokens)
}

func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var input dto.SigninInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	tokens, err := h.authService.Signin(c.Context(), input, clientInfoFromCtx(c))
	if err != nil {
		return c.Status(StatusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

// refreshClaims validates the refresh token carried in the request body.
func (h *AuthHandler) refreshClaims(c *fiber.Ctx) (*service.RefreshClaims, error) {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil || input.RefreshToken == "" {
		return nil, autherror.ErrTokenNotFound
	}

	claims, err := h.tokenService.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, autherror.ErrTokenNotFound
	}
	return claims, nil
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, err := h.refreshClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.authService.Logout(c.Context(), claims); err != nil {
		return c.Status(StatusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	claims, err := h.refreshClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	tokens, err := h.authService.RefreshTokens(c.Context(), claims, clientInfoFromCtx(c))
	if err != nil {
		return c.Status(StatusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

// RequireAccessToken guards routes behind a valid access token.
func (h *AuthHandler) RequireAccessToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing access token"})
		}

		claims, err := h.tokenService.VerifyAccessToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid access token"})
		}

		c.Locals("accountID", claims.Subject)
		return c.Next()
	}
}
