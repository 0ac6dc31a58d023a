package vocab

import (
	"context"

	"github.com/smith3v/tg-word-drill/pkg/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertUser registers a user or refreshes the stored name and last activity.
func (s *Service) UpsertUser(ctx context.Context, userID int64, name string) error {
	if userID == 0 {
		return ErrInvalidUser
	}
	return storageErr("upsert user", s.upsertUser(s.db.WithContext(ctx), userID, name))
}

// TouchActivity upserts a batch of users seen since the last flush.
func (s *Service) TouchActivity(ctx context.Context, names map[int64]string) error {
	if len(names) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for userID, name := range names {
			if userID == 0 {
				continue
			}
			if err := s.upsertUser(tx, userID, name); err != nil {
				return err
			}
		}
		return nil
	})
	return storageErr("touch activity", err)
}

func (s *Service) upsertUser(tx *gorm.DB, userID int64, name string) error {
	now := s.timestamp()
	user := db.User{ID: userID, Name: truncateRunes(name, 100), CreatedAt: now, LastActive: now}
	updates := []string{"name", "last_active"}
	if name == "" {
		updates = []string{"last_active"}
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(updates),
	}).Create(&user).Error
}

func truncateRunes(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}
