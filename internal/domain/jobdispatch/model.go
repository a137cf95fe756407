package jobdispatch

import "time"

type Status string

const (
	StatusSent      Status = "sent"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Event is one audit record for a background job dispatch. A dispatch is
// keyed by DispatchID so retries of the same job overwrite their previous
// status instead of growing the log.
type Event struct {
	DispatchID   string
	JobName      string
	JobPath      string
	TournamentID string
	Status       Status
	Payload      map[string]any
	ErrorMessage string
	OccurredAt   time.Time
	TraceID      string
	SpanID       string
}
