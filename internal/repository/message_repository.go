package repository

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/salon-booking/internal/domain"
	"github.com/spec-kit/salon-booking/internal/persistence"
)

const messagesFile = "contact-messages.json"

// MessageDocument is the on-disk representation of the contact messages.
type MessageDocument struct {
	Messages []domain.ContactMessage `json:"messages"`
	Stats    domain.MessageStats     `json:"stats"`
}

// MessageRepository owns the contact-message document, mirroring the
// locking and write-through discipline of InquiryRepository.
type MessageRepository struct {
	mu     sync.Mutex
	store  *persistence.FileStore
	doc    MessageDocument
	logger *zap.Logger
}

// NewMessageRepository loads the message document, initializing an empty
// one when the file is missing or unreadable.
func NewMessageRepository(store *persistence.FileStore, logger *zap.Logger) (*MessageRepository, error) {
	r := &MessageRepository{store: store, logger: logger}
	r.doc.Messages = []domain.ContactMessage{}

	err := store.Load(messagesFile, &r.doc)
	switch {
	case err == nil:
	case errors.Is(err, persistence.ErrNotFound) || errors.Is(err, persistence.ErrCorrupt):
		logger.Warn("initializing empty contact messages document", zap.Error(err))
		r.doc = MessageDocument{Messages: []domain.ContactMessage{}}
		if err := store.Save(messagesFile, r.doc); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return r, nil
}

// List returns all contact messages, newest first.
func (r *MessageRepository) List() []domain.ContactMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ContactMessage, len(r.doc.Messages))
	copy(out, r.doc.Messages)
	return out
}

// Stats returns the aggregate counters.
func (r *MessageRepository) Stats() domain.MessageStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.doc.Stats
}

// Create inserts a message newest-first and persists.
func (r *MessageRepository) Create(msg domain.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.doc.Messages = append([]domain.ContactMessage{msg}, r.doc.Messages...)
	r.doc.Stats.Record(msg.Status)

	if err := r.store.Save(messagesFile, r.doc); err != nil {
		r.doc.Messages = r.doc.Messages[1:]
		r.doc.Stats = recountMessages(r.doc.Messages)
		r.logger.Error("failed to persist contact messages", zap.Error(err))
		return err
	}
	return nil
}

// UpdateStatus transitions a message between unread and replied, keeping the
// counters consistent in both directions.
func (r *MessageRepository) UpdateStatus(id string, status domain.MessageStatus, now time.Time) (*domain.ContactMessage, domain.MessageStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, msg := range r.doc.Messages {
		if msg.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, "", domain.ErrMessageNotFound
	}

	prev := r.doc.Messages[idx]
	prevStats := r.doc.Stats
	updated := prev
	updated.Status = status
	updated.UpdatedAt = now
	r.doc.Messages[idx] = updated
	if prev.Status != status {
		r.doc.Stats.Move(prev.Status, status)
	}

	if err := r.store.Save(messagesFile, r.doc); err != nil {
		r.doc.Messages[idx] = prev
		r.doc.Stats = prevStats
		r.logger.Error("failed to persist contact messages", zap.Error(err))
		return nil, "", err
	}
	return &updated, prev.Status, nil
}

func recountMessages(messages []domain.ContactMessage) domain.MessageStats {
	var stats domain.MessageStats
	for _, msg := range messages {
		stats.Record(msg.Status)
	}
	return stats
}
