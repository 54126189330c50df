package handlers

import (
	"errors"
	"log"
	"time"

	"onestop-backend/internal/catalog"
	"onestop-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ChatHandler struct {
	svc service.ChatService
}

func NewChatHandler(svc service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type askRequest struct {
	Message string `json:"message"`
	Slug    string `json:"slug"`
}

// Ask handles POST /api/ask { "message": "...", "slug": "..." }.
// A well-formed non-empty message always gets 200 with a reply; gateway
// failures are already degraded to fallback text by the service.
func (h *ChatHandler) Ask(c *fiber.Ctx) error {
	var req askRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	slug := req.Slug
	if slug == "" {
		slug = catalog.DefaultSlug
	}

	reply, err := h.svc.Ask(c.UserContext(), slug, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Message cannot be empty",
			})
		}
		log.Printf("ask failed for %q: %v", slug, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process message",
		})
	}

	return c.JSON(fiber.Map{
		"reply": reply,
	})
}

// History handles GET /api/history?slug=...&limit=...
func (h *ChatHandler) History(c *fiber.Ctx) error {
	slug := c.Query("slug", catalog.DefaultSlug)
	limit := c.QueryInt("limit", 20)

	turns, err := h.svc.History(slug, limit)
	if err != nil {
		log.Printf("history failed for %q: %v", slug, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load chat history",
		})
	}

	history := make([]fiber.Map, 0, len(turns))
	for _, t := range turns {
		history = append(history, fiber.Map{
			"ts":    t.CreatedAt.UTC().Format(time.RFC3339),
			"user":  t.UserText,
			"ai":    t.AIText,
			"model": t.ModelTag,
		})
	}
	return c.JSON(fiber.Map{
		"history": history,
	})
}
