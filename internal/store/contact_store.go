package store

import (
	"strings"
	"sync"
	"time"

	"miniblog/api/internal/ids"
	"miniblog/api/internal/models"
)

// ContactStore collects visitor messages from the contact form.
type ContactStore struct {
	mu       sync.RWMutex
	messages []models.ContactMessage
	now      func() time.Time
}

func NewContactStore() *ContactStore {
	return &ContactStore{now: time.Now}
}

func (s *ContactStore) Submit(name, email, message string) (models.ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || message == "" || !strings.Contains(email, "@") {
		return models.ContactMessage{}, ErrValidation
	}

	record := models.ContactMessage{
		ID:        ids.New(),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.messages = append(s.messages, record)
	s.mu.Unlock()

	return record, nil
}

func (s *ContactStore) List() []models.ContactMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ContactMessage, len(s.messages))
	copy(out, s.messages)
	return out
}
