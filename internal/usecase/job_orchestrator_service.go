package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/trace"

	"github.com/Keegs21/Bunkered/internal/domain/jobdispatch"
	"github.com/Keegs21/Bunkered/internal/domain/tournament"
	"github.com/Keegs21/Bunkered/internal/platform/logging"
)

// JobQueue publishes a job for later delivery to an internal endpoint.
type JobQueue interface {
	Enqueue(ctx context.Context, path string, payload any, delay time.Duration, deduplicationID string) error
}

type noopJobQueue struct{}

func (noopJobQueue) Enqueue(_ context.Context, _ string, _ any, _ time.Duration, _ string) error {
	return nil
}

func NewNoopJobQueue() JobQueue {
	return noopJobQueue{}
}

const settleJobPath = "/v1/internal/jobs/settle-tournament"

type JobOrchestratorConfig struct {
	// DedupWindow buckets dispatch IDs so a retried sweep inside the window
	// cannot double-publish the same settlement.
	DedupWindow time.Duration
	// MaxConcurrentDispatch caps parallel queue publishes during a sweep.
	MaxConcurrentDispatch int
}

type SettlementSweepInput struct {
	// TournamentID narrows the sweep to one event; empty sweeps every
	// completed tournament.
	TournamentID string
}

type SettlementSweepResult struct {
	TournamentCount  int      `json:"tournament_count"`
	QueuedCount      int      `json:"queued_count"`
	QueuedOperations []string `json:"queued_operations"`
}

// JobOrchestratorService publishes settlement jobs and keeps an audit trail
// of every dispatch.
type JobOrchestratorService struct {
	tournamentRepo tournament.Repository
	queue          JobQueue
	dispatchRepo   jobdispatch.Repository
	cfg            JobOrchestratorConfig
	logger         *logging.Logger
	now            func() time.Time
}

var dedupUnsafeCharRegex = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

func NewJobOrchestratorService(
	tournamentRepo tournament.Repository,
	queue JobQueue,
	dispatchRepo jobdispatch.Repository,
	cfg JobOrchestratorConfig,
	logger *logging.Logger,
) *JobOrchestratorService {
	if queue == nil {
		queue = NewNoopJobQueue()
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.DedupWindow <= 0 {
		cfg.DedupWindow = 5 * time.Minute
	}
	if cfg.MaxConcurrentDispatch <= 0 {
		cfg.MaxConcurrentDispatch = 4
	}

	return &JobOrchestratorService{
		tournamentRepo: tournamentRepo,
		queue:          queue,
		dispatchRepo:   dispatchRepo,
		cfg:            cfg,
		logger:         logger,
		now:            time.Now,
	}
}

// EnqueueSettlement publishes one settle-tournament job.
func (s *JobOrchestratorService) EnqueueSettlement(ctx context.Context, tournamentID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.JobOrchestratorService.EnqueueSettlement")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	now := s.now().UTC()
	dedupID := dedupKey("settle-tournament", tournamentID, now, s.cfg.DedupWindow)
	payload := map[string]any{
		"tournament_id": tournamentID,
		"dispatch_id":   dedupID,
	}

	if err := s.queue.Enqueue(ctx, settleJobPath, payload, 0, dedupID); err != nil {
		s.recordDispatchEvent(ctx, jobdispatch.Event{
			DispatchID:   dedupID,
			JobName:      "settle-tournament",
			JobPath:      settleJobPath,
			TournamentID: tournamentID,
			Status:       jobdispatch.StatusFailed,
			Payload:      payload,
			ErrorMessage: err.Error(),
			OccurredAt:   now,
		})
		return fmt.Errorf("enqueue settle-tournament tournament=%s: %w", tournamentID, err)
	}

	s.recordDispatchEvent(ctx, jobdispatch.Event{
		DispatchID:   dedupID,
		JobName:      "settle-tournament",
		JobPath:      settleJobPath,
		TournamentID: tournamentID,
		Status:       jobdispatch.StatusSent,
		Payload:      payload,
		OccurredAt:   now,
	})
	return nil
}

// RunSettlementSweep queues settlement for every completed tournament, or
// for one named event. It is the repair path when a finish-time dispatch was
// lost.
func (s *JobOrchestratorService) RunSettlementSweep(ctx context.Context, input SettlementSweepInput) (SettlementSweepResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.JobOrchestratorService.RunSettlementSweep")
	defer span.End()

	tournaments, err := s.pickTournaments(ctx, input.TournamentID)
	if err != nil {
		return SettlementSweepResult{}, err
	}

	sweep := SettlementSweepResult{
		TournamentCount:  len(tournaments),
		QueuedOperations: make([]string, 0, len(tournaments)),
	}
	if len(tournaments) == 0 {
		return sweep, nil
	}

	workers := pool.NewWithResults[string]().
		WithContext(ctx).
		WithMaxGoroutines(s.cfg.MaxConcurrentDispatch)
	for _, item := range tournaments {
		item := item
		workers.Go(func(ctx context.Context) (string, error) {
			if err := s.EnqueueSettlement(ctx, item.ID); err != nil {
				return "", err
			}
			return "settle-tournament:" + item.ID, nil
		})
	}

	operations, err := workers.Wait()
	if err != nil {
		return SettlementSweepResult{}, err
	}

	sort.Strings(operations)
	sweep.QueuedCount = len(operations)
	sweep.QueuedOperations = operations
	return sweep, nil
}

// MarkDispatchOutcome records the terminal status of a dispatched job. The
// internal job endpoint calls this after executing the settlement.
func (s *JobOrchestratorService) MarkDispatchOutcome(ctx context.Context, dispatchID, tournamentID string, jobErr error) {
	event := jobdispatch.Event{
		DispatchID:   dispatchID,
		JobName:      "settle-tournament",
		JobPath:      settleJobPath,
		TournamentID: tournamentID,
		Status:       jobdispatch.StatusCompleted,
		OccurredAt:   s.now().UTC(),
	}
	if jobErr != nil {
		event.Status = jobdispatch.StatusFailed
		event.ErrorMessage = jobErr.Error()
	}
	s.recordDispatchEvent(ctx, event)
}

func (s *JobOrchestratorService) pickTournaments(ctx context.Context, tournamentID string) ([]tournament.Tournament, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID != "" {
		item, found, err := s.tournamentRepo.GetByID(ctx, tournamentID)
		if err != nil {
			return nil, fmt.Errorf("get tournament for sweep: %w", err)
		}
		if !found {
			return nil, fmt.Errorf("%w: tournament %s", ErrNotFound, tournamentID)
		}
		return []tournament.Tournament{item}, nil
	}

	items, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments for sweep: %w", err)
	}
	completed := make([]tournament.Tournament, 0, len(items))
	for _, item := range items {
		if item.IsCompleted {
			completed = append(completed, item)
		}
	}
	return completed, nil
}

func (s *JobOrchestratorService) recordDispatchEvent(ctx context.Context, event jobdispatch.Event) {
	if s.dispatchRepo == nil || strings.TrimSpace(event.DispatchID) == "" {
		return
	}
	traceID, spanID := traceMetaFromContext(ctx)
	event.TraceID = traceID
	event.SpanID = spanID
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.now().UTC()
	}
	if err := s.dispatchRepo.UpsertEvent(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "record job dispatch event failed",
			"dispatch_id", event.DispatchID,
			"status", event.Status,
			"error", err,
		)
	}
}

func dedupKey(prefix, tournamentID string, at time.Time, bucket time.Duration) string {
	if bucket <= 0 {
		bucket = time.Minute
	}
	slot := at.UTC().Truncate(bucket).Format("20060102T150405Z")
	prefix = sanitizeDedupSegment(prefix)
	tournamentID = sanitizeDedupSegment(tournamentID)
	return prefix + "-" + tournamentID + "-" + slot
}

func sanitizeDedupSegment(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "unknown"
	}
	return dedupUnsafeCharRegex.ReplaceAllString(value, "-")
}

func traceMetaFromContext(ctx context.Context) (string, string) {
	spanContext := trace.SpanFromContext(ctx).SpanContext()
	if !spanContext.IsValid() {
		return "", ""
	}
	return spanContext.TraceID().String(), spanContext.SpanID().String()
}
