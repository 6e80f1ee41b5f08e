package service

import (
	"github.com/rs/zerolog"

	"miniblog/api/internal/config"
	"miniblog/api/internal/models"
	"miniblog/api/internal/store"
)

type ContactService struct {
	messages *store.ContactStore
	cfg      *config.AppConfig
	log      zerolog.Logger
}

func NewContactService(messages *store.ContactStore, cfg *config.AppConfig, log zerolog.Logger) *ContactService {
	return &ContactService{
		messages: messages,
		cfg:      cfg,
		log:      log,
	}
}

// Submit applies the simulated form round-trip, then records the message.
func (s *ContactService) Submit(name, email, message string) (models.ContactMessage, error) {
	simulateRoundTrip(s.cfg.Latency.Submit)

	record, err := s.messages.Submit(name, email, message)
	if err != nil {
		return models.ContactMessage{}, err
	}

	s.log.Info().Str("message_id", record.ID).Msg("contact message received")
	return record, nil
}

func (s *ContactService) List() []models.ContactMessage {
	return s.messages.List()
}
