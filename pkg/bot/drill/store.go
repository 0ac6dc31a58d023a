package drill

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/smith3v/tg-word-drill/pkg/db"
	"github.com/smith3v/tg-word-drill/pkg/logger"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultSessionTTL    = 30 * time.Minute
	SessionSweepInterval = time.Minute
)

// Store keeps one Session per user. Sessions idle for longer than the TTL
// are dropped and the user starts again from idle. When a database is
// attached, sessions are mirrored to drill_sessions and restored on a
// cache miss, so a restart does not lose an open question.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	now      func() time.Time
	ttl      time.Duration
	db       *gorm.DB
}

type StoreOption func(*Store)

func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithPersistence mirrors sessions to the drill_sessions table.
func WithPersistence(gdb *gorm.DB) StoreOption {
	return func(s *Store) {
		s.db = gdb
	}
}

func NewStore(ttl time.Duration, opts ...StoreOption) *Store {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	s := &Store{
		sessions: make(map[int64]*Session),
		now:      time.Now,
		ttl:      ttl,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// New returns a fresh idle session. It is not stored until Save is called.
func (s *Store) New(chatID, userID int64) Session {
	return Session{
		SessionID:      uuid.NewString(),
		ChatID:         chatID,
		UserID:         userID,
		State:          StateIdle,
		LastActivityAt: s.now().UTC(),
	}
}

// Get returns the live session for userID. A miss means the user is new or
// their session expired.
func (s *Store) Get(ctx context.Context, userID int64) (Session, bool) {
	now := s.now().UTC()

	s.mu.Lock()
	session := s.sessions[userID]
	if session != nil {
		if s.expired(session, now) {
			delete(s.sessions, userID)
			session = nil
		} else {
			out := *session
			s.mu.Unlock()
			return out, true
		}
	}
	s.mu.Unlock()

	restored, err := s.load(ctx, userID, now)
	if err != nil {
		logger.Error("failed to load drill session", "user_id", userID, "error", err)
		return Session{}, false
	}
	if restored == nil {
		return Session{}, false
	}

	s.mu.Lock()
	s.sessions[userID] = restored
	s.mu.Unlock()
	return *restored, true
}

// Save stores session as the user's current state and refreshes its
// activity time.
func (s *Store) Save(ctx context.Context, session Session) {
	if session.UserID == 0 {
		return
	}
	if session.SessionID == "" {
		session.SessionID = uuid.NewString()
	}
	if !session.State.Valid() {
		session = session.idle()
	}
	session.LastActivityAt = s.now().UTC()

	s.mu.Lock()
	stored := session
	s.sessions[session.UserID] = &stored
	s.mu.Unlock()

	if err := s.persist(ctx, session); err != nil {
		logger.Error("failed to persist drill session", "user_id", session.UserID, "error", err)
	}
}

func (s *Store) Delete(ctx context.Context, userID int64) {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()

	if s.db == nil {
		return
	}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&db.DrillSession{}).Error; err != nil {
		logger.Error("failed to delete drill session", "user_id", userID, "error", err)
	}
}

// SweepExpired evicts in-memory sessions idle past the TTL and returns how
// many were removed. Persisted rows are cleaned up separately.
func (s *Store) SweepExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for userID, session := range s.sessions {
		if session == nil || s.expired(session, now) {
			delete(s.sessions, userID)
			removed++
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}

func (s *Store) expired(session *Session, now time.Time) bool {
	return now.Sub(session.LastActivityAt) >= s.ttl
}

type sessionContext struct {
	WordID        uint   `json:"word_id,omitempty"`
	Target        string `json:"target,omitempty"`
	Attempt       int    `json:"attempt,omitempty"`
	PendingWordID uint   `json:"pending_word_id,omitempty"`
	PendingPrompt string `json:"pending_prompt,omitempty"`
}

func (s *Store) persist(ctx context.Context, session Session) error {
	if s.db == nil {
		return nil
	}
	raw, err := json.Marshal(sessionContext{
		WordID:        session.WordID,
		Target:        session.Target,
		Attempt:       session.Attempt,
		PendingWordID: session.PendingWordID,
		PendingPrompt: session.PendingPrompt,
	})
	if err != nil {
		return err
	}
	row := db.DrillSession{
		UserID:         session.UserID,
		ChatID:         session.ChatID,
		SessionID:      session.SessionID,
		State:          string(session.State),
		Context:        datatypes.JSON(raw),
		LastActivityAt: session.LastActivityAt,
		ExpiresAt:      session.LastActivityAt.Add(s.ttl),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"chat_id", "session_id", "state", "context", "last_activity_at", "expires_at", "updated_at",
		}),
	}).Create(&row).Error
}

func (s *Store) load(ctx context.Context, userID int64, now time.Time) (*Session, error) {
	if s.db == nil {
		return nil, nil
	}
	var row db.DrillSession
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND expires_at > ?", userID, now).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var payload sessionContext
	if len(row.Context) > 0 {
		if err := json.Unmarshal(row.Context, &payload); err != nil {
			return nil, err
		}
	}
	session := &Session{
		SessionID:      row.SessionID,
		ChatID:         row.ChatID,
		UserID:         row.UserID,
		State:          State(row.State),
		WordID:         payload.WordID,
		Target:         payload.Target,
		Attempt:        payload.Attempt,
		PendingWordID:  payload.PendingWordID,
		PendingPrompt:  payload.PendingPrompt,
		LastActivityAt: row.LastActivityAt,
	}
	if !session.State.Valid() {
		idle := session.idle()
		session = &idle
	}
	return session, nil
}
