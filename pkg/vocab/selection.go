package vocab

import (
	"context"
	"errors"

	"github.com/smith3v/tg-word-drill/pkg/db"
	"gorm.io/gorm"
)

// PickRandomWord returns a uniformly chosen word from the user's assigned,
// non-excluded pool, or nil when the pool is empty.
func (s *Service) PickRandomWord(ctx context.Context, userID int64) (*db.Word, error) {
	pool := func() *gorm.DB {
		return s.db.WithContext(ctx).Model(&db.Word{}).
			Joins("JOIN assignments a ON a.word_id = words.id AND a.user_id = ?", userID).
			Where("NOT EXISTS (SELECT 1 FROM exclusions e WHERE e.user_id = ? AND e.word_id = words.id)", userID)
	}

	var count int64
	if err := pool().Count(&count).Error; err != nil {
		return nil, storageErr("pick word", err)
	}
	if count == 0 {
		return nil, nil
	}

	var word db.Word
	err := pool().
		Select("words.*").
		Order("words.id").
		Offset(s.intn(int(count))).
		Limit(1).
		Take(&word).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// the pool shrank between the two queries
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("pick word", err)
	}
	return &word, nil
}
