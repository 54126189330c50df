package routes

import (
	"onestop-backend/internal/config"
	"onestop-backend/internal/handlers"
	llmHandlers "onestop-backend/internal/llm_handlers"
	"onestop-backend/internal/repo"
	"onestop-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

// registerChat wires the chat flow: repo -> service -> handler.
func registerChat(r fiber.Router, cfg config.Config, llm llmHandlers.Client) {
	chatRepo := repo.NewChatRepository(config.DB)
	chatSvc := service.NewChatService(chatRepo, llm, cfg.GenerateTimeout)
	chatHandler := handlers.NewChatHandler(chatSvc)

	r.Post("/ask", chatHandler.Ask)
	r.Get("/history", chatHandler.History)
}
