package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/Keegs21/Bunkered/internal/domain/tournament"
)

const (
	resettleStatusSuccess = "success"
	resettleStatusFailed  = "failed"

	defaultResettleWorkers = 4
	maxResettleWorkers     = 16
)

type ResettleInput struct {
	Season     int
	MaxWorkers int
}

type ResettleResult struct {
	TournamentCount int                  `json:"tournament_count"`
	SuccessCount    int                  `json:"success_count"`
	FailedCount     int                  `json:"failed_count"`
	WorkerCount     int                  `json:"worker_count"`
	Tasks           []ResettleTaskResult `json:"tasks"`
}

type ResettleTaskResult struct {
	TournamentID  string `json:"tournament_id"`
	Status        string `json:"status"`
	LineupsScored int    `json:"lineups_scored"`
	DurationMs    int64  `json:"duration_ms"`
	Message       string `json:"message,omitempty"`
}

// ResettleService replays settlement over a full season, event by event.
// It is the repair path after a scoring config change or a batch of result
// corrections. Per-tournament settlement already serializes itself, so the
// worker pool only bounds how many tournaments are in flight at once.
type ResettleService struct {
	tournamentRepo tournament.Repository
	settlementSvc  *SettlementService
}

func NewResettleService(tournamentRepo tournament.Repository, settlementSvc *SettlementService) *ResettleService {
	return &ResettleService{
		tournamentRepo: tournamentRepo,
		settlementSvc:  settlementSvc,
	}
}

// ResettleSeason resettles every completed tournament of the season.
func (s *ResettleService) ResettleSeason(ctx context.Context, input ResettleInput) (ResettleResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResettleService.ResettleSeason")
	defer span.End()

	if input.Season <= 0 {
		return ResettleResult{}, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	tournaments, err := s.tournamentRepo.ListCompletedBySeason(ctx, input.Season)
	if err != nil {
		return ResettleResult{}, fmt.Errorf("list completed tournaments for resettle: %w", err)
	}

	workerCount := normalizeResettleWorkerCount(input.MaxWorkers, len(tournaments))
	result := ResettleResult{
		TournamentCount: len(tournaments),
		WorkerCount:     workerCount,
		Tasks:           make([]ResettleTaskResult, 0, len(tournaments)),
	}
	if len(tournaments) == 0 {
		return result, nil
	}

	results := make(chan ResettleTaskResult, len(tournaments))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	workerPool, err := ants.NewPool(workerCount)
	if err != nil {
		return ResettleResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var workers sync.WaitGroup
	for _, item := range tournaments {
		item := item
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := ResettleTaskResult{TournamentID: item.ID}

			summary, settleErr := s.settlementSvc.SettleTournament(ctx, item.ID)
			if settleErr != nil {
				row.Status = resettleStatusFailed
				row.Message = settleErr.Error()
				failedCount.Add(1)
			} else {
				row.Status = resettleStatusSuccess
				row.LineupsScored = summary.LineupsScored
				successCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()

			results <- row
		}); err != nil {
			workers.Done()
			return ResettleResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].TournamentID < result.Tasks[j].TournamentID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	return result, nil
}

func normalizeResettleWorkerCount(requested, taskCount int) int {
	count := requested
	if count <= 0 {
		count = defaultResettleWorkers
	}
	if count > maxResettleWorkers {
		count = maxResettleWorkers
	}
	if taskCount > 0 && count > taskCount {
		count = taskCount
	}
	return count
}
