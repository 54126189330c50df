package routes

import (
	"onestop-backend/internal/catalog"
	"onestop-backend/internal/config"
	llmHandlers "onestop-backend/internal/llm_handlers"

	"github.com/gofiber/fiber/v2"
)

func Register(app *fiber.App, cfg config.Config, llm llmHandlers.Client) {
	// landing on the site root goes straight to the demo product
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/api/products/" + catalog.DefaultSlug)
	})

	api := app.Group("/api")
	registerChat(api, cfg, llm)
	registerShop(api)
}
