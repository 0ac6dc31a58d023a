package handlers

import (
	"context"
	"errors"

	"github.com/go-telegram/bot"
	"github.com/smith3v/tg-word-drill/pkg/bot/drill"
	"github.com/smith3v/tg-word-drill/pkg/logger"
	"github.com/smith3v/tg-word-drill/pkg/ui"
	"github.com/smith3v/tg-word-drill/pkg/vocab"
)

func (h *Handler) handleCustomWord(ctx context.Context, b *bot.Bot, session drill.Session, text string) {
	h.sessions.Save(ctx, session.Finish())

	input, err := ui.ParseWordInput(text)
	if err != nil {
		sendText(ctx, b, session.ChatID, ui.InvalidWordText(err), ui.MainMenuKeyboard())
		return
	}

	_, err = h.words.AcceptCustomWord(ctx, session.UserID, input)
	switch {
	case err == nil:
		sendMarkdown(ctx, b, session.ChatID, ui.WordAddedText(input.Russian), ui.MainMenuKeyboard())
	case errors.Is(err, vocab.ErrDuplicateWord):
		sendMarkdown(ctx, b, session.ChatID, ui.DuplicateWordText(input.Russian), ui.MainMenuKeyboard())
	default:
		sendText(ctx, b, session.ChatID, ui.StorageFailureText, ui.MainMenuKeyboard())
	}
}

func (h *Handler) handleDeletePrompt(ctx context.Context, b *bot.Bot, session drill.Session, text string) {
	wordID, err := h.words.ResolvePromptToWord(ctx, session.UserID, text)
	if errors.Is(err, vocab.ErrNotFound) {
		h.sessions.Save(ctx, session.Finish())
		sendText(ctx, b, session.ChatID, ui.WordNotFoundText(text), ui.MainMenuKeyboard())
		return
	}
	if err != nil {
		logger.Error("failed to resolve word for deletion", "user_id", session.UserID, "error", err)
		h.sessions.Save(ctx, session.Finish())
		sendText(ctx, b, session.ChatID, ui.StorageFailureText, ui.MainMenuKeyboard())
		return
	}

	keyboard, err := ui.ConfirmDeleteKeyboard(wordID)
	if err != nil {
		logger.Error("failed to build confirmation keyboard", "word_id", wordID, "error", err)
		h.sessions.Save(ctx, session.Finish())
		sendText(ctx, b, session.ChatID, ui.StorageFailureText, ui.MainMenuKeyboard())
		return
	}
	h.sessions.Save(ctx, session.AwaitDeleteConfirm(wordID, text))
	sendText(ctx, b, session.ChatID, ui.ConfirmDeleteText(text), keyboard)
}
