package repository

import (
	"errors"
	"os"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/salon-booking/internal/domain"
	"github.com/spec-kit/salon-booking/internal/persistence"
)

func newInquiryRepo(t *testing.T) (*InquiryRepository, *persistence.FileStore) {
	t.Helper()
	store, err := persistence.NewFileStore(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	repo, err := NewInquiryRepository(store, zap.NewNop())
	if err != nil {
		t.Fatalf("NewInquiryRepository: %v", err)
	}
	return repo, store
}

func testInquiry(id, service, date, slot string, status domain.InquiryStatus) domain.Inquiry {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	return domain.Inquiry{
		ID:             id,
		Name:           "A",
		Email:          "a@example.com",
		Phone:          "1234567890",
		Service:        service,
		PreferredDate:  date,
		PreferredTime:  slot,
		NumberOfPeople: 1,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestInquiryRepository_Create(t *testing.T) {
	t.Parallel()

	t.Run("inserts newest first and counts", func(t *testing.T) {
		repo, _ := newInquiryRepo(t)

		if err := repo.Create(testInquiry("a", "Haircut", "2026-02-01", "09:00", domain.InquiryStatusPending)); err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := repo.Create(testInquiry("b", "Haircut", "2026-02-01", "10:00", domain.InquiryStatusPending)); err != nil {
			t.Fatalf("create: %v", err)
		}

		list := repo.List()
		if len(list) != 2 || list[0].ID != "b" || list[1].ID != "a" {
			t.Fatalf("expected newest-first [b a], got %+v", list)
		}
		stats := repo.Stats()
		if stats.Total != 2 || stats.Pending != 2 {
			t.Fatalf("unexpected stats %+v", stats)
		}
	})

	t.Run("rejects slot held by accepted inquiry", func(t *testing.T) {
		repo, _ := newInquiryRepo(t)

		if err := repo.Create(testInquiry("a", "Haircut", "2026-02-01", "10:00", domain.InquiryStatusAccepted)); err != nil {
			t.Fatalf("create: %v", err)
		}
		err := repo.Create(testInquiry("b", "Haircut", "2026-02-01", "10:00", domain.InquiryStatusPending))
		if !errors.Is(err, domain.ErrSlotUnavailable) {
			t.Fatalf("expected ErrSlotUnavailable, got %v", err)
		}
		if len(repo.List()) != 1 {
			t.Fatalf("conflict must not change the list")
		}
		if stats := repo.Stats(); stats.Total != 1 {
			t.Fatalf("conflict must not change stats, got %+v", stats)
		}
	})

	t.Run("different service may share the slot", func(t *testing.T) {
		repo, _ := newInquiryRepo(t)

		if err := repo.Create(testInquiry("a", "Haircut", "2026-02-01", "10:00", domain.InquiryStatusAccepted)); err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := repo.Create(testInquiry("b", "Hair Spa", "2026-02-01", "10:00", domain.InquiryStatusPending)); err != nil {
			t.Fatalf("expected no conflict across services, got %v", err)
		}
	})
}

func TestInquiryRepository_UpdateStatus(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)

	t.Run("moves counters between buckets", func(t *testing.T) {
		repo, _ := newInquiryRepo(t)
		if err := repo.Create(testInquiry("a", "Haircut", "2026-02-01", "10:00", domain.InquiryStatusPending)); err != nil {
			t.Fatalf("create: %v", err)
		}

		updated, old, err := repo.UpdateStatus("a", domain.InquiryStatusAccepted, now)
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if old != domain.InquiryStatusPending || updated.Status != domain.InquiryStatusAccepted {
			t.Fatalf("unexpected transition %s -> %s", old, updated.Status)
		}
		if !updated.UpdatedAt.Equal(now) {
			t.Fatalf("updatedAt not set: %v", updated.UpdatedAt)
		}
		stats := repo.Stats()
		if stats.Pending != 0 || stats.Accepted != 1 || stats.Total != 1 {
			t.Fatalf("unexpected stats %+v", stats)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		repo, _ := newInquiryRepo(t)
		if _, _, err := repo.UpdateStatus("nope", domain.InquiryStatusAccepted, now); !errors.Is(err, domain.ErrInquiryNotFound) {
			t.Fatalf("expected ErrInquiryNotFound, got %v", err)
		}
	})

	t.Run("accepting an occupied slot fails", func(t *testing.T) {
		repo, _ := newInquiryRepo(t)
		if err := repo.Create(testInquiry("a", "Haircut", "2026-02-01", "10:00", domain.InquiryStatusPending)); err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := repo.Create(testInquiry("b", "Haircut", "2026-02-01", "10:00", domain.InquiryStatusPending)); err != nil {
			t.Fatalf("create: %v", err)
		}

		if _, _, err := repo.UpdateStatus("a", domain.InquiryStatusAccepted, now); err != nil {
			t.Fatalf("first accept: %v", err)
		}
		if _, _, err := repo.UpdateStatus("b", domain.InquiryStatusAccepted, now); !errors.Is(err, domain.ErrSlotUnavailable) {
			t.Fatalf("expected ErrSlotUnavailable, got %v", err)
		}

		// invariant: at most one accepted inquiry per slot
		accepted := 0
		for _, inq := range repo.List() {
			if inq.Status == domain.InquiryStatusAccepted {
				accepted++
			}
		}
		if accepted != 1 {
			t.Fatalf("expected exactly one accepted inquiry, got %d", accepted)
		}
	})

	t.Run("re-accepting the same inquiry is allowed", func(t *testing.T) {
		repo, _ := newInquiryRepo(t)
		if err := repo.Create(testInquiry("a", "Haircut", "2026-02-01", "10:00", domain.InquiryStatusAccepted)); err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, _, err := repo.UpdateStatus("a", domain.InquiryStatusAccepted, now); err != nil {
			t.Fatalf("expected no conflict with itself, got %v", err)
		}
	})
}

func TestInquiryRepository_RoundTrip(t *testing.T) {
	t.Parallel()

	repo, store := newInquiryRepo(t)
	if err := repo.Create(testInquiry("a", "Haircut", "2026-02-01", "09:00", domain.InquiryStatusPending)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(testInquiry("b", "Hair Spa", "2026-02-02", "11:00", domain.InquiryStatusAccepted)); err != nil {
		t.Fatalf("create: %v", err)
	}

	reloaded, err := NewInquiryRepository(store, zap.NewNop())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reflect.DeepEqual(repo.List(), reloaded.List()) {
		t.Fatalf("list changed across reload:\n%+v\n%+v", repo.List(), reloaded.List())
	}
	if repo.Stats() != reloaded.Stats() {
		t.Fatalf("stats changed across reload: %+v vs %+v", repo.Stats(), reloaded.Stats())
	}
}

func TestInquiryRepository_InitializesMissingDocument(t *testing.T) {
	t.Parallel()

	repo, store := newInquiryRepo(t)
	if len(repo.List()) != 0 {
		t.Fatalf("expected empty document")
	}
	if _, err := os.Stat(store.Path("inquiries.json")); err != nil {
		t.Fatalf("expected document written out: %v", err)
	}
}

func TestInquiryRepository_RecoversCorruptDocument(t *testing.T) {
	t.Parallel()

	store, err := persistence.NewFileStore(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := os.WriteFile(store.Path("inquiries.json"), []byte("garbage"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	repo, err := NewInquiryRepository(store, zap.NewNop())
	if err != nil {
		t.Fatalf("NewInquiryRepository: %v", err)
	}
	if len(repo.List()) != 0 || repo.Stats().Total != 0 {
		t.Fatalf("expected reinitialized empty document")
	}
}

func TestInquiryRepository_SaveFailureRevertsMemory(t *testing.T) {
	t.Parallel()

	repo, store := newInquiryRepo(t)
	if err := repo.Create(testInquiry("a", "Haircut", "2026-02-01", "09:00", domain.InquiryStatusPending)); err != nil {
		t.Fatalf("create: %v", err)
	}

	// make the document path unwritable by turning it into a directory
	path := store.Path("inquiries.json")
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := repo.Create(testInquiry("b", "Haircut", "2026-02-01", "10:00", domain.InquiryStatusPending)); err == nil {
		t.Fatalf("expected save error")
	}
	if len(repo.List()) != 1 {
		t.Fatalf("failed save must revert the in-memory list")
	}
	if stats := repo.Stats(); stats.Total != 1 || stats.Pending != 1 {
		t.Fatalf("failed save must revert stats, got %+v", stats)
	}

	if _, _, err := repo.UpdateStatus("a", domain.InquiryStatusAccepted, time.Now().UTC()); err == nil {
		t.Fatalf("expected save error")
	}
	if got, _ := repo.GetByID("a"); got.Status != domain.InquiryStatusPending {
		t.Fatalf("failed save must revert the status, got %s", got.Status)
	}
}
