package mocks

import (
	"sync"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/domain"
)

// SentMail records one delivered mail.
type SentMail struct {
	To       string
	Subject  string
	Template string
	Data     map[string]any
}

// MockNotificationService implements domain.NotificationService for testing
type MockNotificationService struct {
	SendFunc func(to, subject, template string, data map[string]any) error

	mu   sync.Mutex
	Sent []SentMail
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// Send records the mail; default behavior is success
func (m *MockNotificationService) Send(to, subject, template string, data map[string]any) error {
	if m.SendFunc != nil {
		return m.SendFunc(to, subject, template, data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, SentMail{To: to, Subject: subject, Template: template, Data: data})
	return nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
