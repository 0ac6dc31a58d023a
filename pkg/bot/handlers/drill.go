package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/smith3v/tg-word-drill/pkg/bot/drill"
	"github.com/smith3v/tg-word-drill/pkg/db"
	"github.com/smith3v/tg-word-drill/pkg/logger"
	"github.com/smith3v/tg-word-drill/pkg/ui"
)

func (h *Handler) askNewWord(ctx context.Context, b *bot.Bot, session drill.Session) {
	word, err := h.words.RequestDrillWord(ctx, session.UserID)
	if err != nil {
		h.sessions.Save(ctx, session.Finish())
		sendText(ctx, b, session.ChatID, ui.StorageFailureText, ui.MainMenuKeyboard())
		return
	}
	if word == nil {
		h.sessions.Save(ctx, session.Finish())
		sendText(ctx, b, session.ChatID, ui.ExhaustedText, ui.MainMenuKeyboard())
		return
	}

	h.sessions.Save(ctx, session.Ask(word.ID, word.TargetWord))
	sendMarkdown(ctx, b, session.ChatID, ui.QuestionText(*word), ui.AnswerKeyboard(ui.ShuffledOptions(*word, h.rnd)))
}

func (h *Handler) handleAnswer(ctx context.Context, b *bot.Bot, session drill.Session, text string) {
	wordID := session.WordID
	target := session.Target
	failed := session.Attempt

	var next drill.Session
	var outcome drill.Outcome
	if text == ui.ButtonSkip {
		next, outcome = session.Skip()
	} else {
		next, outcome = session.Answer(text)
	}

	switch {
	case outcome == drill.OutcomeCorrect:
		word := h.lookup(ctx, wordID)
		keyboard, err := ui.ChoiceKeyboard(wordID)
		if err != nil || word == nil {
			h.sessions.Save(ctx, next.Finish())
			sendText(ctx, b, session.ChatID, ui.StorageFailureText, ui.MainMenuKeyboard())
			return
		}
		h.sessions.Save(ctx, next)
		sendMarkdown(ctx, b, session.ChatID, ui.CorrectText(*word), keyboard)
	case outcome == drill.OutcomeRetry:
		word := h.lookup(ctx, wordID)
		if word == nil {
			h.sessions.Save(ctx, next.Finish())
			sendText(ctx, b, session.ChatID, ui.StorageFailureText, ui.MainMenuKeyboard())
			return
		}
		h.sessions.Save(ctx, next)
		sendMarkdown(ctx, b, session.ChatID, ui.RetryText(*word, failed, drill.MaxAttempts), ui.AnswerKeyboard(ui.ShuffledOptions(*word, h.rnd)))
	case outcome.Reveal():
		h.sessions.Save(ctx, next)
		reveal := ui.RevealText(target)
		if outcome == drill.OutcomeFailed {
			reveal = ui.WrongRevealText(target)
		}
		sendMarkdown(ctx, b, session.ChatID, reveal, ui.MainMenuKeyboard())
	default:
		h.sessions.Save(ctx, next.Finish())
		sendText(ctx, b, session.ChatID, ui.MainMenuText, ui.MainMenuKeyboard())
	}
}

func (h *Handler) lookup(ctx context.Context, wordID uint) *db.Word {
	word, err := h.words.LookupWord(ctx, wordID)
	if err != nil {
		logger.Error("failed to look up word", "word_id", wordID, "error", err)
		return nil
	}
	return word
}
