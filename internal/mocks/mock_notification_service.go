package mocks

import (
	"sync"

	"github.com/you/phoneauthsvc/domain"
)

// MockNotificationService implements domain.NotificationService for testing
type MockNotificationService struct {
	SendSMSFunc func(to, message string) error

	mu      sync.Mutex
	sentSMS []SentSMS
}

// SentSMS records one delivered message
type SentSMS struct {
	To      string
	Message string
}

// NewMockNotificationService creates a new MockNotificationService with
// default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendSMS sends an SMS message
func (m *MockNotificationService) SendSMS(to, message string) error {
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sentSMS = append(m.sentSMS, SentSMS{To: to, Message: message})
	return nil
}

// Sent returns the messages delivered through the default behavior
func (m *MockNotificationService) Sent() []SentSMS {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentSMS, len(m.sentSMS))
	copy(out, m.sentSMS)
	return out
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
