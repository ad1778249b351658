package repository

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/salon-booking/internal/domain"
	"github.com/spec-kit/salon-booking/internal/persistence"
)

const inquiriesFile = "inquiries.json"

// InquiryDocument is the on-disk representation of the inquiry collection.
type InquiryDocument struct {
	Inquiries []domain.Inquiry    `json:"inquiries"`
	Stats     domain.InquiryStats `json:"stats"`
}

// InquiryRepository owns the inquiry document. The in-memory copy is the
// source of truth between load and save; every mutation runs check, mutate
// and persist as one unit under the lock, and a failed save reverts the
// in-memory change so memory and disk never diverge.
type InquiryRepository struct {
	mu     sync.Mutex
	store  *persistence.FileStore
	doc    InquiryDocument
	logger *zap.Logger
}

// NewInquiryRepository loads the inquiry document, initializing an empty one
// when the file is missing or unreadable.
func NewInquiryRepository(store *persistence.FileStore, logger *zap.Logger) (*InquiryRepository, error) {
	r := &InquiryRepository{store: store, logger: logger}
	r.doc.Inquiries = []domain.Inquiry{}

	err := store.Load(inquiriesFile, &r.doc)
	switch {
	case err == nil:
	case errors.Is(err, persistence.ErrNotFound) || errors.Is(err, persistence.ErrCorrupt):
		logger.Warn("initializing empty inquiries document", zap.Error(err))
		r.doc = InquiryDocument{Inquiries: []domain.Inquiry{}}
		if err := store.Save(inquiriesFile, r.doc); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return r, nil
}

// List returns all inquiries, newest first.
func (r *InquiryRepository) List() []domain.Inquiry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Inquiry, len(r.doc.Inquiries))
	copy(out, r.doc.Inquiries)
	return out
}

// GetByID returns a single inquiry.
func (r *InquiryRepository) GetByID(id string) (*domain.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inq := range r.doc.Inquiries {
		if inq.ID == id {
			found := inq
			return &found, nil
		}
	}
	return nil, domain.ErrInquiryNotFound
}

// Stats returns the aggregate counters.
func (r *InquiryRepository) Stats() domain.InquiryStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.doc.Stats
}

// BookedTimes lists the preferred times of accepted inquiries for a date,
// optionally narrowed to one service.
func (r *InquiryRepository) BookedTimes(date, service string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	times := []string{}
	for _, inq := range r.doc.Inquiries {
		if inq.Status != domain.InquiryStatusAccepted || inq.PreferredDate != date {
			continue
		}
		if service != "" && inq.Service != service {
			continue
		}
		times = append(times, inq.PreferredTime)
	}
	return times
}

// Create inserts an inquiry newest-first after verifying no accepted inquiry
// occupies the candidate slot. Nothing is persisted on conflict.
func (r *InquiryRepository) Create(inq domain.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.slotTakenLocked(inq.Service, inq.PreferredDate, inq.PreferredTime, "") {
		return domain.ErrSlotUnavailable
	}

	r.doc.Inquiries = append([]domain.Inquiry{inq}, r.doc.Inquiries...)
	r.doc.Stats.Record(inq.Status)

	if err := r.store.Save(inquiriesFile, r.doc); err != nil {
		r.doc.Inquiries = r.doc.Inquiries[1:]
		r.doc.Stats = recountInquiries(r.doc.Inquiries)
		r.logger.Error("failed to persist inquiries", zap.Error(err))
		return err
	}
	return nil
}

// UpdateStatus transitions an inquiry, keeping the counters consistent.
// Promoting to accepted re-checks the slot so two pending inquiries for the
// same slot can never both be accepted.
func (r *InquiryRepository) UpdateStatus(id string, status domain.InquiryStatus, now time.Time) (*domain.Inquiry, domain.InquiryStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, inq := range r.doc.Inquiries {
		if inq.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, "", domain.ErrInquiryNotFound
	}

	prev := r.doc.Inquiries[idx]
	if status == domain.InquiryStatusAccepted && prev.Status != domain.InquiryStatusAccepted {
		if r.slotTakenLocked(prev.Service, prev.PreferredDate, prev.PreferredTime, prev.ID) {
			return nil, "", domain.ErrSlotUnavailable
		}
	}

	prevStats := r.doc.Stats
	updated := prev
	updated.Status = status
	updated.UpdatedAt = now
	r.doc.Inquiries[idx] = updated
	r.doc.Stats.Move(prev.Status, status)

	if err := r.store.Save(inquiriesFile, r.doc); err != nil {
		r.doc.Inquiries[idx] = prev
		r.doc.Stats = prevStats
		r.logger.Error("failed to persist inquiries", zap.Error(err))
		return nil, "", err
	}
	return &updated, prev.Status, nil
}

func (r *InquiryRepository) slotTakenLocked(service, date, slot, excludeID string) bool {
	for _, inq := range r.doc.Inquiries {
		if inq.ID == excludeID {
			continue
		}
		if inq.OccupiesSlot(service, date, slot) {
			return true
		}
	}
	return false
}

func recountInquiries(inquiries []domain.Inquiry) domain.InquiryStats {
	var stats domain.InquiryStats
	for _, inq := range inquiries {
		stats.Record(inq.Status)
	}
	return stats
}
