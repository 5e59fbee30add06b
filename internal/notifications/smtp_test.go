package notifications_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"deploynotify/internal/config"
	"deploynotify/internal/logging"
	"deploynotify/internal/notifications"
	"deploynotify/internal/testsupport"
)

func TestSessionSettings(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.Email
		wantPort    int
		wantTLS     bool
		wantAuth    bool
		wantTimeout time.Duration
	}{
		{
			name:        "implicit tls on 465",
			cfg:         config.Email{To: "a@example.com", SMTPServer: "smtp.example.com", SMTPPort: 465},
			wantPort:    465,
			wantTLS:     true,
			wantTimeout: 15 * time.Second,
		},
		{
			name:        "starttls on 587",
			cfg:         config.Email{To: "a@example.com", SMTPServer: "smtp.example.com", SMTPPort: 587, Timeout: 3},
			wantPort:    587,
			wantTimeout: 3 * time.Second,
		},
		{
			name:        "absent port defaults to 587",
			cfg:         config.Email{To: "a@example.com", SMTPServer: "smtp.example.com"},
			wantPort:    587,
			wantTimeout: 15 * time.Second,
		},
		{
			name:        "auth with both credentials",
			cfg:         config.Email{SMTPServer: "smtp.example.com", SMTPPort: 25, SMTPUsername: "user", SMTPPassword: "secret"},
			wantPort:    25,
			wantAuth:    true,
			wantTimeout: 15 * time.Second,
		},
		{
			name:        "no auth with username only",
			cfg:         config.Email{SMTPServer: "smtp.example.com", SMTPUsername: "user"},
			wantPort:    587,
			wantTimeout: 15 * time.Second,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := notifications.SessionSettings(tc.cfg)
			if s.Host != "smtp.example.com" {
				t.Fatalf("unexpected host %q", s.Host)
			}
			if s.Port != tc.wantPort || s.ImplicitTLS != tc.wantTLS || s.Auth != tc.wantAuth {
				t.Fatalf("got port=%d tls=%v auth=%v", s.Port, s.ImplicitTLS, s.Auth)
			}
			if s.Timeout != tc.wantTimeout {
				t.Fatalf("unexpected timeout %s", s.Timeout)
			}
			if !s.Auth && (s.Username != "" || s.Password != "") {
				t.Fatal("credentials must not leak into an unauthenticated session")
			}
			if len(s.ClientOptions()) == 0 {
				t.Fatal("expected client options")
			}
		})
	}
}

func TestClientOptionsAddCredentialsOnlyWithAuth(t *testing.T) {
	plain := notifications.SessionSettings(config.Email{SMTPServer: "smtp.example.com"})
	authed := notifications.SessionSettings(config.Email{
		SMTPServer:   "smtp.example.com",
		SMTPUsername: "user",
		SMTPPassword: "secret",
	})

	// port, timeout and the opportunistic STARTTLS policy, plus mechanism,
	// username and password when authenticating.
	if n := len(plain.ClientOptions()); n != 3 {
		t.Fatalf("expected 3 options without auth, got %d", n)
	}
	if n := len(authed.ClientOptions()); n != 6 {
		t.Fatalf("expected 6 options with auth, got %d", n)
	}
	if authed.ImplicitTLS {
		t.Fatal("port 587 must not use implicit tls")
	}
}

func TestEmailSenderSendsOnce(t *testing.T) {
	mailer := &testsupport.RecordingMailer{}
	cfg := config.Email{
		To:         "a@example.com, b@example.com",
		From:       "deploy@example.com",
		SMTPServer: "smtp.example.com",
		SMTPPort:   465,
	}
	sender := notifications.NewEmailSender(cfg, mailer.Factory(), logging.NewNop())

	result := sender.Send(context.Background(), sampleMessage("success"))
	if result.Outcome != notifications.OutcomeSent {
		t.Fatalf("expected sent, got %+v", result)
	}
	if mailer.Sends() != 1 {
		t.Fatalf("expected one message, got %d", mailer.Sends())
	}
	if len(mailer.Sessions) != 1 || !mailer.Sessions[0].ImplicitTLS {
		t.Fatalf("expected one implicit tls session, got %+v", mailer.Sessions)
	}
	rcpts, err := mailer.Messages[0].GetRecipients()
	if err != nil {
		t.Fatalf("GetRecipients: %v", err)
	}
	if len(rcpts) != 2 {
		t.Fatalf("expected two recipients, got %v", rcpts)
	}
}

func TestEmailSenderSkipsIncompleteConfig(t *testing.T) {
	mailer := &testsupport.RecordingMailer{}
	for _, cfg := range []config.Email{
		{SMTPServer: "smtp.example.com"},
		{To: "a@example.com"},
		{},
	} {
		sender := notifications.NewEmailSender(cfg, mailer.Factory(), logging.NewNop())
		result := sender.Send(context.Background(), sampleMessage("success"))
		if result.Outcome != notifications.OutcomeSkipped {
			t.Fatalf("expected skipped for %+v, got %+v", cfg, result)
		}
		if result.Reason != "Email configuration incomplete. Need email-to and smtp-server." {
			t.Fatalf("unexpected reason %q", result.Reason)
		}
	}
	if len(mailer.Sessions) != 0 {
		t.Fatalf("expected no session to be opened, got %d", len(mailer.Sessions))
	}
}

func TestEmailSenderReportsTransportFailure(t *testing.T) {
	mailer := &testsupport.RecordingMailer{Err: errors.New("connection refused")}
	cfg := config.Email{To: "a@example.com", From: "deploy@example.com", SMTPServer: "smtp.example.com"}
	sender := notifications.NewEmailSender(cfg, mailer.Factory(), logging.NewNop())

	result := sender.Send(context.Background(), sampleMessage("success"))
	if result.Outcome != notifications.OutcomeFailed {
		t.Fatalf("expected failed, got %+v", result)
	}
	if !errors.Is(result.Err, notifications.ErrDelivery) {
		t.Fatalf("expected delivery error, got %v", result.Err)
	}
}

func TestEmailSenderRejectsInvalidSender(t *testing.T) {
	mailer := &testsupport.RecordingMailer{}
	cfg := config.Email{To: "a@example.com", From: "not an address", SMTPServer: "smtp.example.com"}
	sender := notifications.NewEmailSender(cfg, mailer.Factory(), logging.NewNop())

	result := sender.Send(context.Background(), sampleMessage("success"))
	if !errors.Is(result.Err, notifications.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %+v", result)
	}
	if mailer.Sends() != 0 {
		t.Fatal("expected nothing to be sent")
	}
}
