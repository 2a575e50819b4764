package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the account CRUD endpoints behind the access-token
// guard.
func RegisterRoutes(app *fiber.App, h *AccountHandler, requireAccessToken fiber.Handler) {
	accounts := app.Group("/api/v1/accounts", requireAccessToken)
	accounts.Post("/create", h.Create)
	accounts.Get("/get/:id", h.GetByID)
	accounts.Post("/get-one", h.GetOne)
	accounts.Post("/get-all", h.GetAll)
	accounts.Patch("/update/:id", h.Update)
	accounts.Patch("/soft-delete/:id", h.SoftDelete)
	accounts.Patch("/restore/:id", h.Restore)
	accounts.Delete("/hard-delete/:id", h.HardDelete)
	accounts.Post("/:id/send-recovery-key", h.SendRecoveryKey)
	accounts.Post("/send-recovery-keys", h.SendRecoveryKeys)
}
