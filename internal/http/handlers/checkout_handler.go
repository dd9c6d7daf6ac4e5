package handlers

import (
	"github.com/gofiber/fiber/v2"

	"lojinha/internal/domain"
	applog "lojinha/internal/log"
	"lojinha/internal/services"
	"lojinha/internal/validate"
)

type CheckoutHandler struct {
	Checkout *services.CheckoutService
}

// Create converts the cart into a payment preference. Business failures
// (empty cart, insufficient stock, gateway rejection) all surface as a flat
// {erro: message} with a 500, which is what the storefront expects.
func (h *CheckoutHandler) Create(c *fiber.Ctx) error {
	var req domain.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		applog.Security(c, "checkout.badbody", map[string]any{"error": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"erro": "corpo da requisição inválido"})
	}

	for _, ln := range req.Lines {
		if !validate.Quantity(ln.Quantity) {
			applog.Security(c, "validation.fail", map[string]any{"field": "qtd", "id": ln.ProductID})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"erro": "quantidade inválida"})
		}
	}
	cpf, ok := validate.CPF(req.BuyerTaxID)
	if !ok {
		// lenient: a malformed tax id falls back to the payment
		// layer's placeholder instead of failing the checkout
		applog.Security(c, "validation.fail", map[string]any{"field": "cpfComprador"})
		cpf = ""
	}
	req.BuyerTaxID = cpf

	url, err := h.Checkout.Checkout(c.Context(), req)
	if err != nil {
		applog.Error(c, "checkout.fail", err, map[string]any{"itens": len(req.Lines)})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"erro": err.Error()})
	}

	applog.Audit(c, "checkout.ok", map[string]any{"itens": len(req.Lines)})
	return c.JSON(fiber.Map{"url_pagamento": url})
}
