package ui

import (
	"github.com/go-telegram/bot/models"
)

const (
	ButtonNewWord    = "Новое слово 🆕"
	ButtonAddWord    = "Добавить слово ➕"
	ButtonDeleteWord = "Удалить слово ❌"
	ButtonSkip       = "Пропустить ⏩"
	ButtonMainMenu   = "Главное меню 🏠"
	ButtonRemove     = "Удалить слово ✅"
	ButtonKeep       = "Оставить слово 🔄"
	ButtonConfirm    = "Да, удалить ✅"
	ButtonDecline    = "Нет, оставить ❎"
)

func MainMenuKeyboard() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{
				{Text: ButtonNewWord},
				{Text: ButtonAddWord},
			},
			{
				{Text: ButtonDeleteWord},
			},
		},
		ResizeKeyboard: true,
	}
}

// AnswerKeyboard lays the options out two per row, followed by Skip and
// Main menu.
func AnswerKeyboard(options []string) *models.ReplyKeyboardMarkup {
	rows := make([][]models.KeyboardButton, 0, len(options)/2+2)
	for i := 0; i < len(options); i += 2 {
		row := []models.KeyboardButton{{Text: options[i]}}
		if i+1 < len(options) {
			row = append(row, models.KeyboardButton{Text: options[i+1]})
		}
		rows = append(rows, row)
	}
	rows = append(rows, []models.KeyboardButton{
		{Text: ButtonSkip},
		{Text: ButtonMainMenu},
	})
	return &models.ReplyKeyboardMarkup{
		Keyboard:       rows,
		ResizeKeyboard: true,
	}
}

// InputKeyboard is shown while the bot waits for free text.
func InputKeyboard() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{{Text: ButtonMainMenu}},
		},
		ResizeKeyboard: true,
	}
}

func ChoiceKeyboard(wordID uint) (*models.InlineKeyboardMarkup, error) {
	removeData, err := BuildRemoveCallback(wordID)
	if err != nil {
		return nil, err
	}
	keepData, err := BuildKeepCallback(wordID)
	if err != nil {
		return nil, err
	}
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: ButtonRemove, CallbackData: removeData},
				{Text: ButtonKeep, CallbackData: keepData},
			},
		},
	}, nil
}

func ConfirmDeleteKeyboard(wordID uint) (*models.InlineKeyboardMarkup, error) {
	yesData, err := BuildConfirmDeleteCallback(wordID)
	if err != nil {
		return nil, err
	}
	noData, err := BuildDeclineDeleteCallback(wordID)
	if err != nil {
		return nil, err
	}
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: ButtonConfirm, CallbackData: yesData},
				{Text: ButtonDecline, CallbackData: noData},
			},
		},
	}, nil
}
