package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/smith3v/tg-word-drill/pkg/bot/drill"
	"github.com/smith3v/tg-word-drill/pkg/logger"
	"github.com/smith3v/tg-word-drill/pkg/ui"
)

// DefaultHandler dispatches every plain text message by the sender's
// current conversation state.
func (h *Handler) DefaultHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil {
		logger.Debug("ignoring non-message update in DefaultHandler")
		return
	}
	if update.Message.Chat.ID == 0 || update.Message.From == nil {
		logger.Error("invalid message in DefaultHandler")
		return
	}
	chatID := update.Message.Chat.ID
	from := update.Message.From
	text := strings.TrimSpace(update.Message.Text)
	if text == "" {
		sendText(ctx, b, chatID, ui.UnknownInputText, ui.MainMenuKeyboard())
		return
	}

	session, err := h.session(ctx, chatID, from)
	if err != nil {
		logger.Error("failed to prepare session", "user_id", from.ID, "error", err)
		sendText(ctx, b, chatID, ui.StorageFailureText, ui.MainMenuKeyboard())
		return
	}
	session.ChatID = chatID

	if text == ui.ButtonMainMenu {
		session, _ = session.Home()
		h.sessions.Save(ctx, session)
		sendText(ctx, b, chatID, ui.MainMenuText, ui.MainMenuKeyboard())
		return
	}

	switch session.State {
	case drill.StateAwaitingAnswer:
		h.handleAnswer(ctx, b, session, text)
		return
	case drill.StateAwaitingCustomWord:
		h.handleCustomWord(ctx, b, session, text)
		return
	case drill.StateAwaitingDeletePrompt:
		h.handleDeletePrompt(ctx, b, session, text)
		return
	case drill.StateAwaitingChoice:
		// typing instead of pressing keeps the word
		session, _ = session.Choose(false)
	case drill.StateAwaitingDeleteConfirm:
		session, _ = session.Confirm(false)
	}

	h.handleMenu(ctx, b, session, text)
}

func (h *Handler) handleMenu(ctx context.Context, b *bot.Bot, session drill.Session, text string) {
	switch text {
	case ui.ButtonNewWord:
		h.askNewWord(ctx, b, session)
	case ui.ButtonAddWord:
		h.sessions.Save(ctx, session.AwaitCustomWord())
		sendMarkdown(ctx, b, session.ChatID, ui.AddWordInstructions(), ui.InputKeyboard())
	case ui.ButtonDeleteWord:
		h.sessions.Save(ctx, session.AwaitDeletePrompt())
		sendText(ctx, b, session.ChatID, ui.DeletePromptText, ui.InputKeyboard())
	default:
		h.sessions.Save(ctx, session)
		sendText(ctx, b, session.ChatID, ui.UnknownInputText, ui.MainMenuKeyboard())
	}
}
