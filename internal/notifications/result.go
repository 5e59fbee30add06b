package notifications

import "time"

// Outcome tags a channel result.
type Outcome string

const (
	OutcomeSkipped Outcome = "skipped"
	OutcomeSent    Outcome = "sent"
	OutcomeFailed  Outcome = "failed"
)

// Result is the outcome of one channel in a run.
type Result struct {
	Channel  string        `json:"channel"`
	Outcome  Outcome       `json:"outcome"`
	Reason   string        `json:"reason,omitempty"`
	Err      error         `json:"-"`
	Duration time.Duration `json:"duration"`
}

// Sent reports a successful delivery.
func Sent(channel string) Result {
	return Result{Channel: channel, Outcome: OutcomeSent}
}

// Skipped reports a channel left out because it is not configured.
func Skipped(channel, reason string) Result {
	return Result{Channel: channel, Outcome: OutcomeSkipped, Reason: reason}
}

// Failed reports a failed delivery.
func Failed(channel string, err error) Result {
	return Result{Channel: channel, Outcome: OutcomeFailed, Err: err}
}

// Summary describes a finished (or aborted) run.
type Summary struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Status      string   `json:"status"`
	Environment string   `json:"environment"`
	AppName     string   `json:"app_name"`
	Results     []Result `json:"results"`
}

// Count returns how many results carry the given outcome.
func (s Summary) Count(outcome Outcome) int {
	n := 0
	for _, r := range s.Results {
		if r.Outcome == outcome {
			n++
		}
	}
	return n
}
