package routes

import (
	"onestop-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func registerShop(r fiber.Router) {
	productHandler := handlers.NewProductHandler()
	r.Get("/products/:slug", productHandler.Get)

	etaHandler := handlers.NewEtaHandler()
	r.Post("/eta", etaHandler.Estimate)
}
