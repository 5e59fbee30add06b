package notifications

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"deploynotify/internal/config"
	"deploynotify/internal/logging"
)

const (
	defaultSMTPPort  = 587
	implicitTLSPort  = 465
	defaultSMTPLimit = 15 * time.Second
)

// SMTPSession describes how the SMTP connection is established.
type SMTPSession struct {
	Host        string        `json:"host"`
	Port        int           `json:"port"`
	ImplicitTLS bool          `json:"implicit_tls"`
	Auth        bool          `json:"auth"`
	Username    string        `json:"username,omitempty"`
	Password    string        `json:"-"`
	Timeout     time.Duration `json:"timeout"`
}

// SessionSettings derives the session from the [email] section. Port 465
// selects implicit TLS; any other port connects in plain text and upgrades
// with STARTTLS when the server offers it. PLAIN authentication is used only
// when both username and password are set, and the client refuses it on a
// connection that never became encrypted.
func SessionSettings(cfg config.Email) SMTPSession {
	port := cfg.SMTPPort
	if port <= 0 {
		port = defaultSMTPPort
	}
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = defaultSMTPLimit
	}
	session := SMTPSession{
		Host:        strings.TrimSpace(cfg.SMTPServer),
		Port:        port,
		ImplicitTLS: port == implicitTLSPort,
		Timeout:     timeout,
	}
	if cfg.SMTPUsername != "" && cfg.SMTPPassword != "" {
		session.Auth = true
		session.Username = cfg.SMTPUsername
		session.Password = cfg.SMTPPassword
	}
	return session
}

// ClientOptions translates the session into go-mail client options.
func (s SMTPSession) ClientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(s.Port),
		mail.WithTimeout(s.Timeout),
	}
	if s.ImplicitTLS {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if s.Auth {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.Username),
			mail.WithPassword(s.Password),
		)
	}
	return opts
}

// Mailer delivers prepared messages over one SMTP session.
type Mailer interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// MailerFactory opens a Mailer for a session.
type MailerFactory func(session SMTPSession) (Mailer, error)

// NewMailClient is the production MailerFactory.
func NewMailClient(session SMTPSession) (Mailer, error) {
	return mail.NewClient(session.Host, session.ClientOptions()...)
}

// EmailSender delivers BuildEmail output over SMTP.
type EmailSender struct {
	cfg    config.Email
	dial   MailerFactory
	logger *slog.Logger
}

func NewEmailSender(cfg config.Email, dial MailerFactory, logger *slog.Logger) *EmailSender {
	if dial == nil {
		dial = NewMailClient
	}
	return &EmailSender{
		cfg:    cfg,
		dial:   dial,
		logger: logging.NewComponentLogger(logger, "email"),
	}
}

func (s *EmailSender) Channel() string { return config.ChannelEmail }

// Send makes a single delivery attempt. The channel is skipped unless both
// a recipient and an SMTP server are configured.
func (s *EmailSender) Send(ctx context.Context, msg Message) Result {
	if strings.TrimSpace(s.cfg.To) == "" || strings.TrimSpace(s.cfg.SMTPServer) == "" {
		return Skipped(config.ChannelEmail, "Email configuration incomplete. Need email-to and smtp-server.")
	}

	mailMsg, err := s.compose(BuildEmail(msg))
	if err != nil {
		return Failed(config.ChannelEmail, err)
	}

	session := SessionSettings(s.cfg)
	mailer, err := s.dial(session)
	if err != nil {
		return Failed(config.ChannelEmail, Wrap(ErrConfiguration, config.ChannelEmail, "create client", "", err))
	}
	s.logger.Debug("sending email",
		logging.String("host", session.Host),
		logging.Int("port", session.Port),
		logging.Bool("implicit_tls", session.ImplicitTLS),
		logging.Bool("auth", session.Auth),
	)
	if err := mailer.DialAndSendWithContext(ctx, mailMsg); err != nil {
		return Failed(config.ChannelEmail, Wrap(ErrDelivery, config.ChannelEmail, "send", "SMTP delivery failed", err))
	}
	return Sent(config.ChannelEmail)
}

func (s *EmailSender) compose(email Email) (*mail.Msg, error) {
	m := mail.NewMsg()
	from := s.cfg.From
	if strings.TrimSpace(from) == "" {
		from = "noreply@azure-deployments.com"
	}
	if err := m.From(from); err != nil {
		return nil, Wrap(ErrConfiguration, config.ChannelEmail, "compose", "invalid email-from", err)
	}
	recipients := splitAddresses(s.cfg.To)
	if err := m.To(recipients...); err != nil {
		return nil, Wrap(ErrConfiguration, config.ChannelEmail, "compose", "invalid email-to", err)
	}
	m.Subject(email.Subject)
	m.SetBodyString(mail.TypeTextHTML, email.HTML)
	return m, nil
}

func splitAddresses(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
