package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/metrics"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/products"
)

var ErrEmptyMessage = errors.New("message is empty")

// historyWindow bounds how much transcript is replayed to the provider.
const historyWindow = 20

type Service struct {
	db        *gorm.DB
	completer Completer
	catalog   *products.Repo
	log       *slog.Logger
}

func NewService(db *gorm.DB, completer Completer, catalog *products.Repo, log *slog.Logger) *Service {
	return &Service{db: db, completer: completer, catalog: catalog, log: log}
}

// Ask persists the visitor message, asks the provider with the session's
// recent transcript plus a catalog-grounded system prompt, and persists the
// reply. Both transcript rows are written in one transaction after the
// provider call succeeds, so a stored question always has its stored answer.
func (s *Service) Ask(ctx context.Context, sessionID, question string) (ChatMessage, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return ChatMessage{}, ErrEmptyMessage
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	history, err := s.Transcript(ctx, sessionID)
	if err != nil {
		return ChatMessage{}, err
	}

	msgs := make([]Message, 0, len(history)+1)
	start := 0
	if len(history) > historyWindow {
		start = len(history) - historyWindow
	}
	for _, m := range history[start:] {
		msgs = append(msgs, Message{Role: m.Role, Content: m.Content})
	}
	msgs = append(msgs, Message{Role: RoleUser, Content: question})

	system, err := s.systemPrompt(ctx)
	if err != nil {
		// catalog lookup failing should not take the chatbot down
		s.log.LogAttrs(ctx, slog.LevelWarn, "chat_catalog_unavailable", slog.Any("err", err))
		system = basePrompt
	}

	metrics.ChatCompletionsTotal.Inc()
	answer, err := s.completer.Complete(ctx, system, msgs)
	if err != nil {
		return ChatMessage{}, err
	}

	now := time.Now()
	reply := ChatMessage{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      RoleAssistant,
		Content:   answer,
		CreatedAt: now,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := ChatMessage{
			ID:        uuid.NewString(),
			SessionID: sessionID,
			Role:      RoleUser,
			Content:   question,
			CreatedAt: now,
		}
		if err := tx.Create(&q).Error; err != nil {
			return err
		}
		return tx.Create(&reply).Error
	})
	if err != nil {
		return ChatMessage{}, err
	}

	return reply, nil
}

// Transcript returns a session's messages, oldest first.
func (s *Service) Transcript(ctx context.Context, sessionID string) ([]ChatMessage, error) {
	var out []ChatMessage
	err := s.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&out, "session_id = ?", sessionID).Error
	return out, err
}

const basePrompt = "You are Trendify's shopping assistant. Answer briefly and " +
	"only about Trendify products, orders and policies. If you do not know, say so."

func (s *Service) systemPrompt(ctx context.Context) (string, error) {
	items, err := s.catalog.List(ctx, products.ListFilter{ActiveOnly: true})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(basePrompt)
	b.WriteString("\n\nCurrent catalog:\n")
	for _, p := range items {
		b.WriteString("- ")
		b.WriteString(p.Name)
		if p.Stock == 0 {
			b.WriteString(" (out of stock)")
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}
