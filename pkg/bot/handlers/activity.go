package handlers

import (
	"context"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// ActivityStore persists last-seen times for a batch of users.
type ActivityStore interface {
	TouchActivity(ctx context.Context, names map[int64]string) error
}

// ActivityTracker collects the users seen since the last flush so that
// last_active is refreshed in one batch instead of on every update.
type ActivityTracker struct {
	mu      sync.Mutex
	store   ActivityStore
	pending map[int64]string
}

func NewActivityTracker(store ActivityStore) *ActivityTracker {
	return &ActivityTracker{store: store, pending: make(map[int64]string)}
}

func (t *ActivityTracker) Touch(userID int64, name string) {
	if t == nil || userID == 0 {
		return
	}
	t.mu.Lock()
	if t.pending == nil {
		t.pending = make(map[int64]string)
	}
	if name != "" || t.pending[userID] == "" {
		t.pending[userID] = name
	}
	t.mu.Unlock()
}

func (t *ActivityTracker) Flush(ctx context.Context) error {
	if t == nil || t.store == nil {
		return nil
	}

	names := t.snapshot()
	if len(names) == 0 {
		return nil
	}

	if err := t.store.TouchActivity(ctx, names); err != nil {
		return err
	}

	t.clear(names)
	return nil
}

func (t *ActivityTracker) snapshot() map[int64]string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.pending) == 0 {
		return nil
	}

	names := make(map[int64]string, len(t.pending))
	for id, name := range t.pending {
		names[id] = name
	}
	return names
}

func (t *ActivityTracker) clear(names map[int64]string) {
	if len(names) == 0 {
		return
	}
	t.mu.Lock()
	for id := range names {
		delete(t.pending, id)
	}
	t.mu.Unlock()
}

func ActivityMiddleware(tracker *ActivityTracker) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if update != nil {
				if update.Message != nil && update.Message.From != nil {
					tracker.Touch(update.Message.From.ID, displayName(update.Message.From))
				}
				if update.CallbackQuery != nil && update.CallbackQuery.From.ID != 0 {
					tracker.Touch(update.CallbackQuery.From.ID, displayName(&update.CallbackQuery.From))
				}
			}
			next(ctx, b, update)
		}
	}
}
