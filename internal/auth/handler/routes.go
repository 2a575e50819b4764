package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	auth := app.Group("/api/v1/auth")
	auth.Post("/signup", h.Signup)
	auth.Post("/signin", h.Signin)
	auth.Post("/logout", h.Logout)
	auth.Post("/refresh", h.Refresh)
}
