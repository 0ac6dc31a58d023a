package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/smith3v/tg-word-drill/pkg/logger"
	"github.com/smith3v/tg-word-drill/pkg/ui"
)

// HandleStart registers the user, syncs their vocabulary and resets any
// conversation in progress.
func (h *Handler) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.From == nil || update.Message.Chat.ID == 0 {
		logger.Error("invalid update in HandleStart")
		return
	}
	from := update.Message.From
	chatID := update.Message.Chat.ID

	// /start drops any pending question or deletion
	h.sessions.Delete(ctx, from.ID)

	if err := h.words.OnFirstContact(ctx, from.ID, displayName(from)); err != nil {
		logger.Error("failed to register user", "user_id", from.ID, "error", err)
		sendText(ctx, b, chatID, ui.StorageFailureText, nil)
		return
	}

	h.sessions.Save(ctx, h.sessions.New(chatID, from.ID))
	sendText(ctx, b, chatID, ui.WelcomeText(displayName(from)), ui.MainMenuKeyboard())
}
