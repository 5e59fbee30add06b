package testsupport

import (
	"context"
	"sync"

	"github.com/wneessen/go-mail"

	"deploynotify/internal/notifications"
)

// RecordingMailer captures SMTP sessions and messages instead of dialing.
type RecordingMailer struct {
	mu       sync.Mutex
	Err      error
	Sessions []notifications.SMTPSession
	Messages []*mail.Msg
}

// Factory returns a MailerFactory that records the session and hands back
// the mailer itself.
func (r *RecordingMailer) Factory() notifications.MailerFactory {
	return func(session notifications.SMTPSession) (notifications.Mailer, error) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.Sessions = append(r.Sessions, session)
		return r, nil
	}
}

// DialAndSendWithContext records messages and returns Err.
func (r *RecordingMailer) DialAndSendWithContext(_ context.Context, messages ...*mail.Msg) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, messages...)
	return r.Err
}

// Sends reports how many messages were handed to the mailer.
func (r *RecordingMailer) Sends() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Messages)
}
