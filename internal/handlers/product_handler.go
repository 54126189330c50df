package handlers

import (
	"onestop-backend/internal/catalog"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct{}

func NewProductHandler() *ProductHandler {
	return &ProductHandler{}
}

// Get handles GET /api/products/:slug
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	slug := c.Params("slug")
	p, ok := catalog.Get(slug)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}
	return c.JSON(fiber.Map{
		"slug":    slug,
		"product": p,
	})
}
