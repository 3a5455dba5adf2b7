package assistant

import (
	"time"

	"github.com/google/uuid"

	"github.com/pawlog/pawlog/internal/models"
	"github.com/pawlog/pawlog/internal/store"
	"github.com/pawlog/pawlog/internal/validation"
)

// Service handles a chat exchange end to end: it validates the incoming
// text, asks the Responder for a reply, and records both messages in the
// chat log as a pair.
type Service struct {
	responder  *Responder
	activities *store.ActivityStore
	log        *store.ChatLog
	now        func() time.Time
}

// ServiceOption configures a Service
type ServiceOption func(*Service)

// WithServiceClock overrides the time source used for message timestamps
// and for anchoring replies to a calendar day.
func WithServiceClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a chat service over the given stores
func NewService(responder *Responder, activities *store.ActivityStore, log *store.ChatLog, opts ...ServiceOption) *Service {
	s := &Service{
		responder:  responder,
		activities: activities,
		log:        log,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Post processes one user message. The text is sanitized before storage;
// a message that trims to empty is rejected with a ValidationError and
// leaves the log untouched. On success the user message and the computed
// reply are appended as a pair, in that order, and both are returned.
func (s *Service) Post(text string) (*models.ChatMessage, *models.ChatMessage, error) {
	text = validation.SanitizeText(text)
	if text == "" {
		return nil, nil, store.NewValidationError("message", "must not be empty")
	}

	now := s.now()
	user := &models.ChatMessage{
		ID:        uuid.New(),
		Type:      models.MessageUser,
		Text:      text,
		Timestamp: now,
	}

	activities, currentPet := s.activities.List()
	ai := &models.ChatMessage{
		ID:        uuid.New(),
		Type:      models.MessageAI,
		Text:      s.responder.Reply(text, activities, currentPet, now),
		Timestamp: now,
	}

	s.log.Append(user, ai)
	return user, ai, nil
}

// History returns the chat log in chronological order
func (s *Service) History() []*models.ChatMessage {
	return s.log.History()
}
