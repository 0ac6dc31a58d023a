package ui

import "testing"

func TestMainMenuKeyboard(t *testing.T) {
	kb := MainMenuKeyboard()
	if !kb.ResizeKeyboard {
		t.Fatalf("expected resizable keyboard")
	}
	var labels []string
	for _, row := range kb.Keyboard {
		for _, button := range row {
			labels = append(labels, button.Text)
		}
	}
	want := []string{ButtonNewWord, ButtonAddWord, ButtonDeleteWord}
	if len(labels) != len(want) {
		t.Fatalf("expected %v, got %v", want, labels)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, labels)
		}
	}
}

func TestAnswerKeyboard(t *testing.T) {
	kb := AnswerKeyboard([]string{"Cat", "Dog", "White", "Tree"})
	if len(kb.Keyboard) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(kb.Keyboard))
	}
	if kb.Keyboard[0][0].Text != "Cat" || kb.Keyboard[1][1].Text != "Tree" {
		t.Fatalf("unexpected option layout: %+v", kb.Keyboard)
	}
	last := kb.Keyboard[2]
	if len(last) != 2 || last[0].Text != ButtonSkip || last[1].Text != ButtonMainMenu {
		t.Fatalf("expected skip and main menu row, got %+v", last)
	}

	odd := AnswerKeyboard([]string{"a", "b", "c"})
	if len(odd.Keyboard) != 3 || len(odd.Keyboard[1]) != 1 {
		t.Fatalf("unexpected layout for odd option count: %+v", odd.Keyboard)
	}
}

func TestChoiceKeyboard(t *testing.T) {
	kb, err := ChoiceKeyboard(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := kb.InlineKeyboard[0]
	if row[0].CallbackData != "w:rm:42" || row[1].CallbackData != "w:keep:42" {
		t.Fatalf("unexpected callback data: %+v", row)
	}
	if _, err := ChoiceKeyboard(0); err == nil {
		t.Fatalf("expected error for zero word id")
	}
}

func TestConfirmDeleteKeyboard(t *testing.T) {
	kb, err := ConfirmDeleteKeyboard(9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := kb.InlineKeyboard[0]
	if row[0].Text != ButtonConfirm || row[0].CallbackData != "w:yes:9" {
		t.Fatalf("unexpected confirm button: %+v", row[0])
	}
	if row[1].Text != ButtonDecline || row[1].CallbackData != "w:no:9" {
		t.Fatalf("unexpected decline button: %+v", row[1])
	}
}
