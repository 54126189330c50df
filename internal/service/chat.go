package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	llmHandlers "onestop-backend/internal/llm_handlers"
	"onestop-backend/internal/models"
	"onestop-backend/internal/repo"

	"github.com/google/uuid"
)

// FallbackReply is shown whenever the model gateway fails; the request itself
// still succeeds.
const FallbackReply = "The assistant is unavailable right now. Please try again in a moment."

// ErrEmptyMessage rejects blank questions before any gateway or store work.
var ErrEmptyMessage = errors.New("message must not be empty")

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// ChatService answers product questions and keeps the per-product chat log.
type ChatService interface {
	// Ask returns the assistant's reply for one user message. The reply is
	// never empty for a non-empty message: gateway failures degrade to
	// FallbackReply and store failures never surface here.
	Ask(ctx context.Context, slug, message string) (string, error)
	// History returns up to limit recent turns for a product, oldest-first.
	History(slug string, limit int) ([]models.ChatTurn, error)
}

type chatService struct {
	repo    repo.ChatRepoInterface
	llm     llmHandlers.Client
	timeout time.Duration
}

func NewChatService(chatRepo repo.ChatRepoInterface, llm llmHandlers.Client, timeout time.Duration) ChatService {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &chatService{repo: chatRepo, llm: llm, timeout: timeout}
}

func (s *chatService) Ask(ctx context.Context, slug, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	// Shipping cost questions get a deterministic answer from catalog data;
	// the model tends to hallucinate generic shipping advice here.
	if reply, ok := shippingReply(slug, message); ok {
		s.record(slug, message, reply)
		return reply, nil
	}

	prompt := buildPrompt(slug, message)

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.llm.Generate(genCtx, prompt)
	if err != nil {
		log.Printf("llm generate failed for %q: %v", slug, err)
		reply = FallbackReply
	}

	s.record(slug, message, reply)
	return reply, nil
}

// record appends the turn; persistence failures must not change the reply.
func (s *chatService) record(slug, userText, aiText string) {
	turn := &models.ChatTurn{
		UUID:        uuid.New(),
		ProductSlug: slug,
		UserText:    userText,
		AIText:      aiText,
		ModelTag:    s.llm.Model(),
	}
	if err := s.repo.AppendTurn(turn); err != nil {
		log.Printf("failed to persist chat turn for %q: %v", slug, err)
	}
}

func (s *chatService) History(slug string, limit int) ([]models.ChatTurn, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return s.repo.RecentTurns(slug, limit)
}
