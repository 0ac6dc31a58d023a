package vocab

import (
	"context"
	"time"

	"github.com/smith3v/tg-word-drill/pkg/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const assignmentBatchSize = 500

// syncEpoch stands in for the last sync time of a user with no assignments.
var syncEpoch = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// SyncUser assigns every global word, plus the user's own words, that is
// newer than the user's most recent assignment and is neither assigned nor
// excluded. Words catalogued before that point stay unassigned once the user
// has been synced past them. It returns the number of new assignments.
func (s *Service) SyncUser(ctx context.Context, userID int64) (int, error) {
	if userID == 0 {
		return 0, ErrInvalidUser
	}
	now := s.timestamp()
	var created int

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&db.Word{}).
			Where("(words.owner_user_id IS NULL OR words.owner_user_id = ?)", userID).
			Where("NOT EXISTS (SELECT 1 FROM assignments a WHERE a.user_id = ? AND a.word_id = words.id)", userID).
			Where("NOT EXISTS (SELECT 1 FROM exclusions e WHERE e.user_id = ? AND e.word_id = words.id)", userID).
			Where("words.added_at > COALESCE((SELECT MAX(a.added_at) FROM assignments a WHERE a.user_id = ?), ?)", userID, syncEpoch).
			Order("words.id").
			Pluck("words.id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		rows := make([]db.Assignment, 0, len(ids))
		for _, id := range ids {
			rows = append(rows, db.Assignment{UserID: userID, WordID: id, AddedAt: now})
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&rows, assignmentBatchSize)
		if res.Error != nil {
			return res.Error
		}
		created = int(res.RowsAffected)
		return nil
	})
	if err != nil {
		return 0, storageErr("sync user", err)
	}
	return created, nil
}

// DeleteAssignment removes a word from the user's pool and records a
// permanent exclusion, atomically. Deleting an unassigned or already
// excluded word succeeds without changes beyond the exclusion row.
func (s *Service) DeleteAssignment(ctx context.Context, userID int64, wordID uint) error {
	if userID == 0 {
		return ErrInvalidUser
	}
	now := s.timestamp()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND word_id = ?", userID, wordID).Delete(&db.Assignment{}).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&db.Exclusion{UserID: userID, WordID: wordID, DeletedAt: now}).Error
	})
	return storageErr("delete assignment", err)
}
