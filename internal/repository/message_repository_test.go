package repository

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/salon-booking/internal/domain"
	"github.com/spec-kit/salon-booking/internal/persistence"
)

func newMessageRepo(t *testing.T) (*MessageRepository, *persistence.FileStore) {
	t.Helper()
	store, err := persistence.NewFileStore(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	repo, err := NewMessageRepository(store, zap.NewNop())
	if err != nil {
		t.Fatalf("NewMessageRepository: %v", err)
	}
	return repo, store
}

func testMessage(id string) domain.ContactMessage {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	return domain.ContactMessage{
		ID:        id,
		Name:      "B",
		Email:     "b@example.com",
		Subject:   "Opening hours",
		Message:   "Are you open on Sundays?",
		Status:    domain.MessageStatusUnread,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMessageRepository_CreateAndReload(t *testing.T) {
	t.Parallel()

	repo, store := newMessageRepo(t)
	if err := repo.Create(testMessage("m1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(testMessage("m2")); err != nil {
		t.Fatalf("create: %v", err)
	}

	if list := repo.List(); len(list) != 2 || list[0].ID != "m2" {
		t.Fatalf("expected newest-first [m2 m1], got %+v", list)
	}
	if stats := repo.Stats(); stats.Total != 2 || stats.Unread != 2 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	reloaded, err := NewMessageRepository(store, zap.NewNop())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reflect.DeepEqual(repo.List(), reloaded.List()) {
		t.Fatalf("list changed across reload")
	}
	if repo.Stats() != reloaded.Stats() {
		t.Fatalf("stats changed across reload")
	}
}

func TestMessageRepository_UpdateStatus(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)

	t.Run("moves counters both directions", func(t *testing.T) {
		repo, _ := newMessageRepo(t)
		if err := repo.Create(testMessage("m1")); err != nil {
			t.Fatalf("create: %v", err)
		}

		if _, _, err := repo.UpdateStatus("m1", domain.MessageStatusReplied, now); err != nil {
			t.Fatalf("update: %v", err)
		}
		if stats := repo.Stats(); stats.Unread != 0 || stats.Replied != 1 {
			t.Fatalf("unexpected stats %+v", stats)
		}

		if _, _, err := repo.UpdateStatus("m1", domain.MessageStatusUnread, now); err != nil {
			t.Fatalf("update: %v", err)
		}
		if stats := repo.Stats(); stats.Unread != 1 || stats.Replied != 0 {
			t.Fatalf("unexpected stats %+v", stats)
		}
	})

	t.Run("repeated status does not double count", func(t *testing.T) {
		repo, _ := newMessageRepo(t)
		if err := repo.Create(testMessage("m1")); err != nil {
			t.Fatalf("create: %v", err)
		}

		if _, _, err := repo.UpdateStatus("m1", domain.MessageStatusUnread, now); err != nil {
			t.Fatalf("update: %v", err)
		}
		if stats := repo.Stats(); stats.Unread != 1 || stats.Replied != 0 {
			t.Fatalf("unexpected stats %+v", stats)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		repo, _ := newMessageRepo(t)
		if _, _, err := repo.UpdateStatus("nope", domain.MessageStatusReplied, now); !errors.Is(err, domain.ErrMessageNotFound) {
			t.Fatalf("expected ErrMessageNotFound, got %v", err)
		}
	})
}
