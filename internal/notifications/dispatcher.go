package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"deploynotify/internal/config"
	"deploynotify/internal/logging"
	"deploynotify/internal/runcontext"
	"deploynotify/internal/status"
)

// Sender delivers a Message over one channel.
type Sender interface {
	Channel() string
	Send(ctx context.Context, msg Message) Result
}

// Dispatcher runs the selected channels for one deployment event.
type Dispatcher struct {
	selection string
	senders   []Sender
	session   SMTPSession
	provider  runcontext.Provider
	naming    Naming
	logger    *slog.Logger
	newID     func() string
	now       func() time.Time
}

// Option customizes a Dispatcher.
type Option func(*dispatcherOptions)

type dispatcherOptions struct {
	httpClient *http.Client
	mailer     MailerFactory
	senders    []Sender
	newID      func() string
}

// WithHTTPClient replaces the client used by the webhook channels.
func WithHTTPClient(client *http.Client) Option {
	return func(o *dispatcherOptions) { o.httpClient = client }
}

// WithMailerFactory replaces the SMTP client constructor.
func WithMailerFactory(factory MailerFactory) Option {
	return func(o *dispatcherOptions) { o.mailer = factory }
}

// WithSenders replaces the channel senders entirely. Channel order is taken
// from the configuration; senders for unselected channels are ignored.
func WithSenders(senders ...Sender) Option {
	return func(o *dispatcherOptions) { o.senders = senders }
}

// WithIDGenerator replaces the correlation ID generator.
func WithIDGenerator(fn func() string) Option {
	return func(o *dispatcherOptions) { o.newID = fn }
}

// NewDispatcher wires senders for the channels cfg selects. An unknown
// selection is a configuration error and no sender is built.
func NewDispatcher(cfg *config.Config, provider runcontext.Provider, logger *slog.Logger, opts ...Option) (*Dispatcher, error) {
	if cfg == nil {
		return nil, Wrap(ErrConfiguration, "", "build dispatcher", "configuration is required", nil)
	}
	channels := cfg.Channels()
	if len(channels) == 0 {
		return nil, Wrap(ErrConfiguration, "", "build dispatcher",
			fmt.Sprintf("unsupported notification-type %q (want teams, email, slack or all)", cfg.Notification.Type), nil)
	}
	if provider == nil {
		provider = runcontext.EnvProvider{}
	}

	options := dispatcherOptions{newID: uuid.NewString}
	for _, opt := range opts {
		opt(&options)
	}

	available := options.senders
	if available == nil {
		available = []Sender{
			NewTeamsSender(cfg.Teams, options.httpClient, logger),
			NewEmailSender(cfg.Email, options.mailer, logger),
			NewSlackSender(cfg.Slack, options.httpClient, logger),
		}
	}
	byChannel := make(map[string]Sender, len(available))
	for _, s := range available {
		byChannel[s.Channel()] = s
	}

	senders := make([]Sender, 0, len(channels))
	for _, ch := range channels {
		s, ok := byChannel[ch]
		if !ok {
			return nil, Wrap(ErrConfiguration, ch, "build dispatcher", "no sender registered", nil)
		}
		senders = append(senders, s)
	}

	return &Dispatcher{
		selection: cfg.Notification.Type,
		senders:   senders,
		session:   SessionSettings(cfg.Email),
		provider:  provider,
		naming: Naming{
			AppNameSource: cfg.Notification.AppNameSource,
			CommitFormat:  cfg.Notification.CommitFormat,
		},
		logger: logging.NewComponentLogger(logger, "dispatcher"),
		newID:  options.newID,
		now:    time.Now,
	}, nil
}

// Channels lists the active channels in dispatch order.
func (d *Dispatcher) Channels() []string {
	out := make([]string, 0, len(d.senders))
	for _, s := range d.senders {
		out = append(out, s.Channel())
	}
	return out
}

// Prepare resolves the status and assembles the shared Message without
// sending anything.
func (d *Dispatcher) Prepare(req Request) (Message, error) {
	rc, err := d.provider.Context()
	if err != nil {
		return Message{}, Wrap(ErrConfiguration, "", "read run context", "", err)
	}
	return NewMessage(status.Resolve(req.Status), req, rc, d.naming)
}

// Dispatch delivers req over every active channel in order. The first failed
// channel ends the run: its error is returned and the remaining channels are
// not attempted. The returned Summary always lists the results gathered so
// far.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (Summary, error) {
	id := d.newID()
	ctx = logging.WithCorrelationID(ctx, id)
	logger := logging.WithContext(ctx, d.logger)

	summary := Summary{
		ID:          id,
		Type:        d.selection,
		Environment: req.Environment,
	}

	msg, err := d.Prepare(req)
	if err != nil {
		return summary, err
	}
	summary.Status = msg.Status.Text
	summary.Environment = msg.Environment
	summary.AppName = msg.AppName

	logger.Debug("dispatch started",
		logging.String(logging.FieldStatus, msg.Status.Text),
		logging.String(logging.FieldEnvironment, msg.Environment),
		logging.Int("channels", len(d.senders)),
	)

	for _, sender := range d.senders {
		if err := ctx.Err(); err != nil {
			return summary, Wrap(ErrDelivery, sender.Channel(), "dispatch", "cancelled", err)
		}

		started := d.now()
		result := sender.Send(ctx, msg)
		result.Duration = d.now().Sub(started)
		if result.Channel == "" {
			result.Channel = sender.Channel()
		}
		summary.Results = append(summary.Results, result)

		attrs := []logging.Attr{
			logging.String(logging.FieldChannel, result.Channel),
			logging.String(logging.FieldOutcome, string(result.Outcome)),
		}
		switch result.Outcome {
		case OutcomeSent:
			logger.Info("notification sent", logging.Args(append(attrs, logging.Duration("duration", result.Duration))...)...)
		case OutcomeSkipped:
			logger.Info(result.Reason, logging.Args(attrs...)...)
		default:
			err := result.Err
			if err == nil {
				err = Wrap(ErrDelivery, result.Channel, "send", "failed without detail", nil)
				summary.Results[len(summary.Results)-1].Err = err
			}
			logger.Error("notification failed", logging.Args(append(attrs, logging.Error(err))...)...)
			return summary, err
		}
	}

	return summary, nil
}
