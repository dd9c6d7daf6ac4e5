package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "lojinha/internal/log"
	"lojinha/internal/repos"
)

type ProductHandler struct {
	Products *repos.ProductRepo
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Products.List()
	if err != nil {
		applog.Error(c, "produtos.list", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao buscar produtos"})
	}
	return c.JSON(products)
}

// Seed wipes the catalog and reinstalls the demo products.
func (h *ProductHandler) Seed(c *fiber.Ctx) error {
	catalog := repos.DefaultCatalog()
	if err := h.Products.Reset(catalog); err != nil {
		applog.Error(c, "produtos.seed", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("Erro ao popular: " + err.Error())
	}
	applog.Audit(c, "produtos.seed", map[string]any{"count": len(catalog)})
	return c.SendString("Banco populado com sucesso!")
}
