package drill

import (
	"context"
	"testing"
	"time"

	dbpkg "github.com/smith3v/tg-word-drill/pkg/db"
	"github.com/smith3v/tg-word-drill/pkg/internal/testutil"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func TestStoreSaveAndGet(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)}
	store := NewStore(10*time.Minute, WithClock(clock.Now))
	ctx := context.Background()

	if _, ok := store.Get(ctx, 1); ok {
		t.Fatalf("expected miss for unknown user")
	}

	session := store.New(100, 1)
	if session.SessionID == "" || session.State != StateIdle {
		t.Fatalf("unexpected new session: %+v", session)
	}
	store.Save(ctx, session.Ask(3, "Sun"))

	got, ok := store.Get(ctx, 1)
	if !ok {
		t.Fatalf("expected stored session")
	}
	if got.State != StateAwaitingAnswer || got.WordID != 3 || got.SessionID != session.SessionID {
		t.Fatalf("unexpected stored session: %+v", got)
	}

	clock.now = clock.now.Add(10 * time.Minute)
	if _, ok := store.Get(ctx, 1); ok {
		t.Fatalf("expected session to expire after ttl")
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired session to be evicted")
	}
}

func TestStoreSweepExpired(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)}
	store := NewStore(0, WithClock(clock.Now))
	ctx := context.Background()
	if store.TTL() != DefaultSessionTTL {
		t.Fatalf("expected default ttl, got %v", store.TTL())
	}

	store.Save(ctx, store.New(1, 1))
	clock.now = clock.now.Add(20 * time.Minute)
	store.Save(ctx, store.New(2, 2))

	removed := store.SweepExpired(clock.now.Add(15 * time.Minute))
	if removed != 1 {
		t.Fatalf("expected 1 expired session, got %d", removed)
	}
	if _, ok := store.Get(ctx, 2); !ok {
		t.Fatalf("expected recent session to survive")
	}
}

func TestStoreDelete(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()
	store.Save(ctx, store.New(1, 1))
	store.Delete(ctx, 1)
	if _, ok := store.Get(ctx, 1); ok {
		t.Fatalf("expected deleted session to be gone")
	}
}

func TestStorePersistsAndRestores(t *testing.T) {
	gdb := testutil.SetupTestDB(t)
	clock := &fakeClock{now: time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)}
	ctx := context.Background()

	first := NewStore(30*time.Minute, WithClock(clock.Now), WithPersistence(gdb))
	session := first.New(55, 5).AwaitDeleteConfirm(12, "Кот")
	first.Save(ctx, session)
	first.Save(ctx, session)

	var rows []dbpkg.DrillSession
	if err := gdb.Find(&rows).Error; err != nil {
		t.Fatalf("failed to load rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected a single upserted row, got %d", len(rows))
	}
	if rows[0].State != string(StateAwaitingDeleteConfirm) || !rows[0].ExpiresAt.Equal(clock.now.Add(30*time.Minute)) {
		t.Fatalf("unexpected row: %+v", rows[0])
	}

	clock.now = clock.now.Add(5 * time.Minute)
	second := NewStore(30*time.Minute, WithClock(clock.Now), WithPersistence(gdb))
	restored, ok := second.Get(ctx, 5)
	if !ok {
		t.Fatalf("expected session to be restored from database")
	}
	if restored.State != StateAwaitingDeleteConfirm || restored.PendingWordID != 12 || restored.PendingPrompt != "Кот" || restored.ChatID != 55 {
		t.Fatalf("unexpected restored session: %+v", restored)
	}
	if restored.SessionID != session.SessionID {
		t.Fatalf("expected session id %s, got %s", session.SessionID, restored.SessionID)
	}

	clock.now = clock.now.Add(time.Hour)
	third := NewStore(30*time.Minute, WithClock(clock.Now), WithPersistence(gdb))
	if _, ok := third.Get(ctx, 5); ok {
		t.Fatalf("expected expired row to be ignored")
	}

	second.Delete(ctx, 5)
	var count int64
	if err := gdb.Model(&dbpkg.DrillSession{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected row to be deleted, got %d", count)
	}
}
