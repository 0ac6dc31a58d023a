package vocab

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/smith3v/tg-word-drill/pkg/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaxFieldLength matches the column width of every word field.
const MaxFieldLength = 50

const seedBatchSize = 200

// WordInput is a prompt, its correct translation and three distractors.
type WordInput struct {
	Russian string
	Target  string
	Wrong1  string
	Wrong2  string
	Wrong3  string
}

func (w WordInput) trimmed() WordInput {
	return WordInput{
		Russian: strings.TrimSpace(w.Russian),
		Target:  strings.TrimSpace(w.Target),
		Wrong1:  strings.TrimSpace(w.Wrong1),
		Wrong2:  strings.TrimSpace(w.Wrong2),
		Wrong3:  strings.TrimSpace(w.Wrong3),
	}
}

func (w WordInput) fields() []string {
	return []string{w.Russian, w.Target, w.Wrong1, w.Wrong2, w.Wrong3}
}

// Validate reports the first empty or oversized field.
func (w WordInput) Validate() error {
	names := []string{"word", "translation", "wrong option 1", "wrong option 2", "wrong option 3"}
	for i, value := range w.trimmed().fields() {
		if value == "" {
			return fmt.Errorf("%s is empty", names[i])
		}
		if utf8.RuneCountInString(value) > MaxFieldLength {
			return fmt.Errorf("%s is longer than %d characters", names[i], MaxFieldLength)
		}
	}
	return nil
}

func (w WordInput) model(owner *int64, addedAt time.Time) db.Word {
	return db.Word{
		RussianWord: w.Russian,
		TargetWord:  w.Target,
		Wrong1:      w.Wrong1,
		Wrong2:      w.Wrong2,
		Wrong3:      w.Wrong3,
		OwnerUserID: owner,
		AddedAt:     addedAt,
	}
}

// SeedDefaults inserts the built-in global catalog. Prompts that already
// exist globally are left untouched, so repeated calls are no-ops.
func (s *Service) SeedDefaults(ctx context.Context) (int, error) {
	return s.SeedGlobalWords(ctx, defaultWords)
}

// SeedGlobalWords adds global words, skipping prompts already present.
// It returns the number of words actually inserted.
func (s *Service) SeedGlobalWords(ctx context.Context, entries []WordInput) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}
	now := s.timestamp()
	seen := make(map[string]struct{}, len(entries))
	words := make([]db.Word, 0, len(entries))
	for _, entry := range entries {
		entry = entry.trimmed()
		if _, ok := seen[entry.Russian]; ok {
			continue
		}
		seen[entry.Russian] = struct{}{}
		words = append(words, entry.model(nil, now))
	}

	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&words, seedBatchSize)
	if res.Error != nil {
		return 0, storageErr("seed words", res.Error)
	}
	return int(res.RowsAffected), nil
}

// AddCustomWord creates a word owned by userID and assigns it to that user
// in one transaction. A repeated prompt for the same owner yields
// ErrDuplicateWord and changes nothing.
func (s *Service) AddCustomWord(ctx context.Context, userID int64, input WordInput) (uint, error) {
	if userID == 0 {
		return 0, ErrInvalidUser
	}
	input = input.trimmed()
	now := s.timestamp()
	owner := userID
	word := input.model(&owner, now)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&db.Word{}).
			Where("owner_user_id = ? AND russian_word = ?", userID, input.Russian).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrDuplicateWord
		}

		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&word)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 || word.ID == 0 {
			return ErrDuplicateWord
		}

		return tx.Create(&db.Assignment{UserID: userID, WordID: word.ID, AddedAt: now}).Error
	})
	if errors.Is(err, ErrDuplicateWord) {
		return 0, ErrDuplicateWord
	}
	if err != nil {
		return 0, storageErr("add custom word", err)
	}
	return word.ID, nil
}

func (s *Service) GetByID(ctx context.Context, wordID uint) (*db.Word, error) {
	var word db.Word
	err := s.db.WithContext(ctx).First(&word, wordID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storageErr("get word", err)
	}
	return &word, nil
}

// FindOwnedWordID resolves a prompt among the words currently assigned to
// userID. A custom word wins over a global word with the same prompt.
func (s *Service) FindOwnedWordID(ctx context.Context, userID int64, prompt string) (uint, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return 0, ErrNotFound
	}

	var ids []uint
	err := s.db.WithContext(ctx).Model(&db.Word{}).
		Joins("JOIN assignments a ON a.word_id = words.id AND a.user_id = ?", userID).
		Where("words.russian_word = ?", prompt).
		Order("words.owner_user_id IS NULL").
		Order("words.id").
		Limit(1).
		Pluck("words.id", &ids).Error
	if err != nil {
		return 0, storageErr("find word", err)
	}
	if len(ids) == 0 {
		return 0, ErrNotFound
	}
	return ids[0], nil
}
