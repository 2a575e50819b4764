package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kelvinmenegasse/idp-server/internal/account/domain"
	"github.com/kelvinmenegasse/idp-server/internal/account/dto"
	"github.com/kelvinmenegasse/idp-server/internal/account/service"
	authhandler "github.com/kelvinmenegasse/idp-server/internal/auth/handler"
)

type AccountHandler struct {
	accountService *service.AccountService
}

func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(authhandler.StatusForError(err)).JSON(fiber.Map{"error": err.Error()})
}

func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateAccountInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	account, err := h.accountService.Create(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToPublicAccount(account))
}

func (h *AccountHandler) GetByID(c *fiber.Ctx) error {
	account, err := h.accountService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.ToPublicAccount(account))
}

func (h *AccountHandler) GetOne(c *fiber.Ctx) error {
	var filter domain.Filter
	if err := c.BodyParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	account, err := h.accountService.FindOne(c.Context(), filter)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.ToPublicAccount(account))
}

func (h *AccountHandler) GetAll(c *fiber.Ctx) error {
	var filter domain.Filter
	if err := c.BodyParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	accounts, err := h.accountService.GetMany(c.Context(), filter)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.ToPublicAccounts(accounts))
}

func (h *AccountHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateAccountInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	account, err := h.accountService.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.ToPublicAccount(account))
}

func (h *AccountHandler) SoftDelete(c *fiber.Ctx) error {
	account, err := h.accountService.SoftDelete(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.ToPublicAccount(account))
}

func (h *AccountHandler) Restore(c *fiber.Ctx) error {
	account, err := h.accountService.Restore(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.ToPublicAccount(account))
}

func (h *AccountHandler) HardDelete(c *fiber.Ctx) error {
	if err := h.accountService.HardDelete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (h *AccountHandler) SendRecoveryKey(c *fiber.Ctx) error {
	if err := h.accountService.SendRecoveryKeyToAccount(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (h *AccountHandler) SendRecoveryKeys(c *fiber.Ctx) error {
	var input dto.SendRecoveryKeysInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	results, err := h.accountService.SendRecoveryKeyToAccounts(c.Context(), input.IDs)
	if err != nil {
		return c.Status(authhandler.StatusForError(err)).JSON(fiber.Map{
			"error":   err.Error(),
			"results": results,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"results": results})
}
