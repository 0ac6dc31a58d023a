package ui

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/smith3v/tg-word-drill/pkg/db"
	"github.com/smith3v/tg-word-drill/pkg/vocab"
)

const (
	AddWordFieldSeparator = ":"
	addWordFieldCount     = 5
)

var ErrWrongFieldCount = errors.New("expected 5 colon-separated values")

const (
	MainMenuText       = "Главное меню:"
	ExhaustedText      = "🎉 Поздравляю! Ты выучил все слова!"
	DeletePromptText   = "✏️ Введите русское слово, которое хотите удалить:"
	StorageFailureText = "⚠️ Ошибка при обращении к словарю. Попробуйте позже."
	SessionExpiredText = "⚠️ Сессия истекла. Начните заново."
	UnknownInputText   = "Используйте кнопки ниже."

	addWordExample = "Яблоко : Apple : Orange : Banana : Pear"
)

func WelcomeText(name string) string {
	if strings.TrimSpace(name) == "" {
		name = "друг"
	}
	return fmt.Sprintf("👋 Привет, %s!\n\nЯ помогу тебе учить английские слова.\nИспользуй кнопки ниже для управления:", name)
}

func QuestionText(word db.Word) string {
	return fmt.Sprintf("📖 Слово: *%s*\n\nВыбери правильный перевод:", bot.EscapeMarkdown(word.RussianWord))
}

// RetryText reports the failed attempt number out of maxAttempts.
func RetryText(word db.Word, failed, maxAttempts int) string {
	return fmt.Sprintf("❌ Неправильно\\! Попытка %d из %d\\.\n\nКак переводится слово: *%s*?", failed, maxAttempts, bot.EscapeMarkdown(word.RussianWord))
}

func CorrectText(word db.Word) string {
	return fmt.Sprintf("🎉 *Правильно\\!*\nЧто сделать со словом '%s'?", bot.EscapeMarkdown(word.RussianWord))
}

func RevealText(target string) string {
	return fmt.Sprintf("Правильный ответ: *%s*", bot.EscapeMarkdown(target))
}

func WrongRevealText(target string) string {
	return fmt.Sprintf("❌ Неправильно\\! Правильный ответ: *%s*", bot.EscapeMarkdown(target))
}

func RemovedText(prompt string) string {
	return fmt.Sprintf("🗑 Слово '%s' удалено из вашего списка для изучения.", prompt)
}

func KeptText(prompt string) string {
	return fmt.Sprintf("🔄 Слово '%s' осталось в вашем списке для повторения.", prompt)
}

func AddWordInstructions() string {
	return "📝 Введи новое слово в формате:\n" +
		"*Русское слово : Правильный перевод : Неправильный1 : Неправильный2 : Неправильный3*\n\n" +
		"Пример: _" + addWordExample + "_"
}

func WordAddedText(prompt string) string {
	return fmt.Sprintf("✅ Слово *%s* успешно добавлено\\!", bot.EscapeMarkdown(prompt))
}

func DuplicateWordText(prompt string) string {
	return fmt.Sprintf("❌ Слово *%s* уже существует\\!", bot.EscapeMarkdown(prompt))
}

func InvalidWordText(err error) string {
	if errors.Is(err, ErrWrongFieldCount) {
		return "❌ Неправильный формат. Нужно 5 значений, разделенных двоеточиями.\nПример: " + addWordExample
	}
	return fmt.Sprintf("❌ Все поля должны быть заполнены и не длиннее %d символов!\nПример: %s", vocab.MaxFieldLength, addWordExample)
}

func WordNotFoundText(prompt string) string {
	return fmt.Sprintf("⚠️ Слово '%s' не найдено в вашем словаре.\nПроверьте правильность написания и попробуйте снова.", prompt)
}

func ConfirmDeleteText(prompt string) string {
	return fmt.Sprintf("Вы точно хотите удалить слово '%s'?", prompt)
}

func DeletedText(prompt string) string {
	return fmt.Sprintf("✅ Слово '%s' успешно удалено!", prompt)
}

// ParseWordInput splits "word : translation : wrong1 : wrong2 : wrong3".
func ParseWordInput(text string) (vocab.WordInput, error) {
	parts := strings.Split(text, AddWordFieldSeparator)
	if len(parts) != addWordFieldCount {
		return vocab.WordInput{}, ErrWrongFieldCount
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	input := vocab.WordInput{
		Russian: parts[0],
		Target:  parts[1],
		Wrong1:  parts[2],
		Wrong2:  parts[3],
		Wrong3:  parts[4],
	}
	if err := input.Validate(); err != nil {
		return vocab.WordInput{}, err
	}
	return input, nil
}

// ShuffledOptions returns the translation and its distractors in random
// order. A nil rnd uses the shared source.
func ShuffledOptions(word db.Word, rnd *rand.Rand) []string {
	options := []string{word.TargetWord, word.Wrong1, word.Wrong2, word.Wrong3}
	shuffle := rand.Shuffle
	if rnd != nil {
		shuffle = rnd.Shuffle
	}
	shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
