package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Keegs21/Bunkered/internal/domain/result"
	"github.com/Keegs21/Bunkered/internal/domain/tournament"
	"github.com/Keegs21/Bunkered/internal/platform/logging"
)

// SettlementEnqueuer hands a finished tournament to the background job
// pipeline for settlement.
type SettlementEnqueuer interface {
	EnqueueSettlement(ctx context.Context, tournamentID string) error
}

// ResultService ingests final tournament results from the trusted internal
// feed. A final ingest locks every lineup, marks the event completed and
// queues its settlement.
type ResultService struct {
	resultRepo     result.Repository
	tournamentRepo tournament.Repository
	lineupRepo     lineupLocker
	settlementJobs SettlementEnqueuer
	logger         *logging.Logger
	now            func() time.Time
}

type lineupLocker interface {
	LockByTournament(ctx context.Context, tournamentID string) error
}

type IngestResultsInput struct {
	TournamentID string
	Rows         []result.TournamentResult
	// Final marks the results as the official finish: lineups lock, the
	// tournament completes and settlement is queued.
	Final bool
}

type IngestResultsSummary struct {
	TournamentID     string    `json:"tournament_id"`
	RowsUpserted     int       `json:"rows_upserted"`
	Finalized        bool      `json:"finalized"`
	SettlementQueued bool      `json:"settlement_queued"`
	IngestedAt       time.Time `json:"ingested_at"`
}

func NewResultService(
	resultRepo result.Repository,
	tournamentRepo tournament.Repository,
	lineupRepo lineupLocker,
	settlementJobs SettlementEnqueuer,
	logger *logging.Logger,
) *ResultService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ResultService{
		resultRepo:     resultRepo,
		tournamentRepo: tournamentRepo,
		lineupRepo:     lineupRepo,
		settlementJobs: settlementJobs,
		logger:         logger,
		now:            time.Now,
	}
}

// IngestResults upserts one batch of result rows. Re-ingesting corrected
// rows is allowed at any time; a later settlement run picks them up.
func (s *ResultService) IngestResults(ctx context.Context, input IngestResultsInput) (IngestResultsSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.IngestResults")
	defer span.End()

	tournamentID := strings.TrimSpace(input.TournamentID)
	if tournamentID == "" {
		return IngestResultsSummary{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	if len(input.Rows) == 0 {
		return IngestResultsSummary{}, fmt.Errorf("%w: no result rows", ErrInvalidInput)
	}

	if _, found, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		return IngestResultsSummary{}, fmt.Errorf("get tournament for ingest: %w", err)
	} else if !found {
		return IngestResultsSummary{}, fmt.Errorf("%w: tournament %s", ErrNotFound, tournamentID)
	}

	rows := make([]result.TournamentResult, 0, len(input.Rows))
	for idx, row := range input.Rows {
		if strings.TrimSpace(row.GolferID) == "" {
			return IngestResultsSummary{}, fmt.Errorf("%w: row %d has no golfer id", ErrInvalidInput, idx+1)
		}
		if row.Position != nil && *row.Position < 1 {
			return IngestResultsSummary{}, fmt.Errorf("%w: row %d position must be positive", ErrInvalidInput, idx+1)
		}
		row.TournamentID = tournamentID
		rows = append(rows, row)
	}

	if err := s.resultRepo.UpsertBatch(ctx, rows); err != nil {
		return IngestResultsSummary{}, fmt.Errorf("upsert result rows: %w", err)
	}

	summary := IngestResultsSummary{
		TournamentID: tournamentID,
		RowsUpserted: len(rows),
		IngestedAt:   s.now().UTC(),
	}
	if !input.Final {
		return summary, nil
	}

	if err := s.lineupRepo.LockByTournament(ctx, tournamentID); err != nil {
		return IngestResultsSummary{}, fmt.Errorf("lock lineups for tournament %s: %w", tournamentID, err)
	}
	if err := s.tournamentRepo.MarkCompleted(ctx, tournamentID); err != nil {
		return IngestResultsSummary{}, fmt.Errorf("mark tournament %s completed: %w", tournamentID, err)
	}
	summary.Finalized = true

	if s.settlementJobs != nil {
		if err := s.settlementJobs.EnqueueSettlement(ctx, tournamentID); err != nil {
			// Ingest already succeeded; the settlement sweep retries later.
			s.logger.WarnContext(ctx, "enqueue settlement failed",
				"tournament_id", tournamentID,
				"error", err,
			)
		} else {
			summary.SettlementQueued = true
		}
	}

	return summary, nil
}

// ListResults returns the stored result rows for one tournament.
func (s *ResultService) ListResults(ctx context.Context, tournamentID string) ([]result.TournamentResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.ListResults")
	defer span.End()

	if strings.TrimSpace(tournamentID) == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	rows, err := s.resultRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return rows, nil
}
