package handlers

import (
	"context"
	"math/rand"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/smith3v/tg-word-drill/pkg/bot/drill"
	"github.com/smith3v/tg-word-drill/pkg/db"
	"github.com/smith3v/tg-word-drill/pkg/logger"
	"github.com/smith3v/tg-word-drill/pkg/vocab"
)

// WordService is the part of the vocabulary core the chat layer relies on.
type WordService interface {
	OnFirstContact(ctx context.Context, userID int64, name string) error
	RequestDrillWord(ctx context.Context, userID int64) (*db.Word, error)
	LookupWord(ctx context.Context, wordID uint) (*db.Word, error)
	AcceptCustomWord(ctx context.Context, userID int64, input vocab.WordInput) (uint, error)
	ConfirmDelete(ctx context.Context, userID int64, wordID uint) bool
	ResolvePromptToWord(ctx context.Context, userID int64, prompt string) (uint, error)
}

type Handler struct {
	words    WordService
	sessions *drill.Store
	rnd      *rand.Rand
}

type Option func(*Handler)

// WithRand fixes the option shuffle. Handlers are then not safe for
// concurrent use, which is fine in tests.
func WithRand(rnd *rand.Rand) Option {
	return func(h *Handler) {
		h.rnd = rnd
	}
}

func New(words WordService, sessions *drill.Store, opts ...Option) *Handler {
	h := &Handler{
		words:    words,
		sessions: sessions,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register wires the handler into the bot. Text messages that match no
// command go through the default handler passed to bot.New.
func (h *Handler) Register(b *bot.Bot) {
	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, h.HandleStart)
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, "w:", bot.MatchTypePrefix, h.HandleCallback)
}

// session returns the caller's live session, or registers and syncs them
// and starts a fresh one.
func (h *Handler) session(ctx context.Context, chatID int64, from *models.User) (drill.Session, error) {
	if current, ok := h.sessions.Get(ctx, from.ID); ok {
		if current.ChatID == 0 {
			current.ChatID = chatID
		}
		return current, nil
	}
	if err := h.words.OnFirstContact(ctx, from.ID, displayName(from)); err != nil {
		return drill.Session{}, err
	}
	return h.sessions.New(chatID, from.ID), nil
}

func displayName(user *models.User) string {
	if user == nil {
		return ""
	}
	if name := strings.TrimSpace(user.FirstName); name != "" {
		return name
	}
	return user.Username
}

func sendText(ctx context.Context, b *bot.Bot, chatID int64, text string, markup models.ReplyMarkup) {
	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: markup,
	}); err != nil {
		logger.Error("failed to send message", "chat_id", chatID, "error", err)
	}
}

func sendMarkdown(ctx context.Context, b *bot.Bot, chatID int64, text string, markup models.ReplyMarkup) {
	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   models.ParseModeMarkdown,
		ReplyMarkup: markup,
	}); err != nil {
		logger.Error("failed to send message", "chat_id", chatID, "error", err)
	}
}
