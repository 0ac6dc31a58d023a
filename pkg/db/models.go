// pkg/db/models.go
package db

import (
	"time"

	"gorm.io/datatypes"
)

// User is keyed by the Telegram user id.
type User struct {
	ID         int64  `gorm:"primaryKey;autoIncrement:false"`
	Name       string `gorm:"size:100"`
	CreatedAt  time.Time
	LastActive time.Time `gorm:"not null"`
}

// Word is global when OwnerUserID is nil. Prompts are unique per owner, and
// globally unique among words without an owner.
type Word struct {
	ID          uint      `gorm:"primaryKey"`
	RussianWord string    `gorm:"size:50;not null;uniqueIndex:idx_words_owner_prompt,priority:2;uniqueIndex:idx_words_global_prompt,where:owner_user_id IS NULL"`
	TargetWord  string    `gorm:"size:50;not null"`
	Wrong1      string    `gorm:"size:50;not null"`
	Wrong2      string    `gorm:"size:50;not null"`
	Wrong3      string    `gorm:"size:50;not null"`
	OwnerUserID *int64    `gorm:"uniqueIndex:idx_words_owner_prompt,priority:1"`
	AddedAt     time.Time `gorm:"not null;index"`
}

// Assignment puts a word into a user's active drilling pool.
type Assignment struct {
	UserID  int64     `gorm:"primaryKey;autoIncrement:false;index"`
	WordID  uint      `gorm:"primaryKey;autoIncrement:false"`
	AddedAt time.Time `gorm:"not null"`
	User    *User     `gorm:"constraint:OnDelete:CASCADE"`
	Word    *Word     `gorm:"constraint:OnDelete:CASCADE"`
}

// Exclusion is a permanent per-user opt-out. DeletedAt is a plain timestamp,
// not a gorm soft-delete marker.
type Exclusion struct {
	UserID    int64     `gorm:"primaryKey;autoIncrement:false;index"`
	WordID    uint      `gorm:"primaryKey;autoIncrement:false"`
	DeletedAt time.Time `gorm:"not null"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE"`
	Word      *Word     `gorm:"constraint:OnDelete:CASCADE"`
}

// LearnedWord is migrated but nothing reads or writes it yet.
type LearnedWord struct {
	UserID    int64     `gorm:"primaryKey;autoIncrement:false"`
	WordID    uint      `gorm:"primaryKey;autoIncrement:false"`
	LearnedAt time.Time `gorm:"not null"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE"`
	Word      *Word     `gorm:"constraint:OnDelete:CASCADE"`
}

type DrillSession struct {
	ID             uint           `gorm:"primaryKey"`
	UserID         int64          `gorm:"uniqueIndex"`
	ChatID         int64          `gorm:"not null"`
	SessionID      string         `gorm:"size:36;not null;default:''"`
	State          string         `gorm:"size:32;not null;default:idle"`
	Context        datatypes.JSON `gorm:"not null"`
	LastActivityAt time.Time      `gorm:"not null"`
	ExpiresAt      time.Time      `gorm:"not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Models lists every table in migration order.
func Models() []any {
	return []any{
		&User{},
		&Word{},
		&Assignment{},
		&Exclusion{},
		&LearnedWord{},
		&DrillSession{},
	}
}
