package vocab

import (
	"context"

	"github.com/smith3v/tg-word-drill/pkg/db"
	"github.com/smith3v/tg-word-drill/pkg/logger"
)

// OnFirstContact registers the user and brings their pool up to date with
// the catalog. Handlers call it on /start and whenever a user arrives
// without a live drill session.
func (s *Service) OnFirstContact(ctx context.Context, userID int64, name string) error {
	if err := s.UpsertUser(ctx, userID, name); err != nil {
		return err
	}
	added, err := s.SyncUser(ctx, userID)
	if err != nil {
		return err
	}
	if added > 0 {
		logger.Info("synced user vocabulary", "user_id", userID, "added", added)
	}
	return nil
}

// RequestDrillWord returns nil without error when the user has nothing left
// to drill.
func (s *Service) RequestDrillWord(ctx context.Context, userID int64) (*db.Word, error) {
	word, err := s.PickRandomWord(ctx, userID)
	if err != nil {
		logger.Error("failed to pick drill word", "user_id", userID, "error", err)
		return nil, err
	}
	return word, nil
}

func (s *Service) LookupWord(ctx context.Context, wordID uint) (*db.Word, error) {
	return s.GetByID(ctx, wordID)
}

func (s *Service) AcceptCustomWord(ctx context.Context, userID int64, input WordInput) (uint, error) {
	id, err := s.AddCustomWord(ctx, userID, input)
	if err != nil {
		if IsStorageError(err) {
			logger.Error("failed to add custom word", "user_id", userID, "error", err)
		}
		return 0, err
	}
	logger.Info("custom word added", "user_id", userID, "word_id", id)
	return id, nil
}

// ConfirmDelete reports whether the word left the user's pool for good.
func (s *Service) ConfirmDelete(ctx context.Context, userID int64, wordID uint) bool {
	if err := s.DeleteAssignment(ctx, userID, wordID); err != nil {
		logger.Error("failed to delete word", "user_id", userID, "word_id", wordID, "error", err)
		return false
	}
	return true
}

func (s *Service) ResolvePromptToWord(ctx context.Context, userID int64, prompt string) (uint, error) {
	return s.FindOwnedWordID(ctx, userID, prompt)
}
