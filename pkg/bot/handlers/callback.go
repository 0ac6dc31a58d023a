package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/smith3v/tg-word-drill/pkg/bot/drill"
	"github.com/smith3v/tg-word-drill/pkg/logger"
	"github.com/smith3v/tg-word-drill/pkg/ui"
)

const callbackInactiveText = "Кнопка больше не активна"

// HandleCallback resolves the inline remove/keep and delete confirmation
// buttons. Presses that no longer match the user's session are answered
// with an expiry notice and change nothing.
func (h *Handler) HandleCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.CallbackQuery == nil {
		logger.Error("invalid update in HandleCallback")
		return
	}
	query := update.CallbackQuery

	answerCallback := func(text string) {
		if query.ID == "" {
			return
		}
		if _, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: query.ID,
			Text:            text,
		}); err != nil {
			logger.Error("failed to answer callback query", "error", err)
		}
	}

	message := query.Message
	if message.Type != models.MaybeInaccessibleMessageTypeMessage || message.Message == nil || message.Message.Chat.ID == 0 {
		answerCallback("Сообщение недоступно")
		return
	}
	chatID := message.Message.Chat.ID
	userID := query.From.ID

	action, err := ui.ParseCallbackData(query.Data)
	if err != nil {
		logger.Warn("invalid callback data", "user_id", userID, "data", query.Data, "error", err)
		answerCallback(callbackInactiveText)
		return
	}

	session, ok := h.sessions.Get(ctx, userID)
	if !ok || !pending(session, action) {
		answerCallback(callbackInactiveText)
		sendText(ctx, b, chatID, ui.SessionExpiredText, ui.MainMenuKeyboard())
		return
	}
	answerCallback("")
	session.ChatID = chatID

	prompt := session.PendingPrompt
	if prompt == "" {
		if word := h.lookup(ctx, action.WordID); word != nil {
			prompt = word.RussianWord
		}
	}

	var deleteID uint
	if action.IsChoice() {
		session, deleteID = session.Choose(action.Kind == ui.KindRemove)
	} else {
		session, deleteID = session.Confirm(action.Kind == ui.KindConfirm)
	}
	h.sessions.Save(ctx, session)

	if deleteID == 0 {
		sendText(ctx, b, chatID, ui.KeptText(prompt), ui.MainMenuKeyboard())
		return
	}
	if !h.words.ConfirmDelete(ctx, userID, deleteID) {
		sendText(ctx, b, chatID, ui.StorageFailureText, ui.MainMenuKeyboard())
		return
	}
	if action.Kind == ui.KindConfirm {
		sendText(ctx, b, chatID, ui.DeletedText(prompt), ui.MainMenuKeyboard())
		return
	}
	sendText(ctx, b, chatID, ui.RemovedText(prompt), ui.MainMenuKeyboard())
}

// pending reports whether the pressed button belongs to the question or
// deletion the session is currently waiting on.
func pending(session drill.Session, action ui.Action) bool {
	if action.IsChoice() {
		return session.State == drill.StateAwaitingChoice && session.WordID == action.WordID
	}
	return session.State == drill.StateAwaitingDeleteConfirm && session.PendingWordID == action.WordID
}
