package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Keegs21/Bunkered/external/jobqueue"
	"github.com/Keegs21/Bunkered/internal/config"
	"github.com/Keegs21/Bunkered/internal/domain/golfer"
	"github.com/Keegs21/Bunkered/internal/domain/jobdispatch"
	"github.com/Keegs21/Bunkered/internal/domain/league"
	"github.com/Keegs21/Bunkered/internal/domain/lineup"
	"github.com/Keegs21/Bunkered/internal/domain/result"
	"github.com/Keegs21/Bunkered/internal/domain/team"
	"github.com/Keegs21/Bunkered/internal/domain/tournament"
	"github.com/Keegs21/Bunkered/internal/infrastructure/repository/memory"
	"github.com/Keegs21/Bunkered/internal/infrastructure/repository/postgres"
	"github.com/Keegs21/Bunkered/internal/interfaces/httpapi"
	"github.com/Keegs21/Bunkered/internal/platform/cache"
	idgen "github.com/Keegs21/Bunkered/internal/platform/id"
	"github.com/Keegs21/Bunkered/internal/platform/logging"
	"github.com/Keegs21/Bunkered/internal/platform/resilience"
	"github.com/Keegs21/Bunkered/internal/usecase"
)

type repositories struct {
	leagues     league.Repository
	teams       team.Repository
	golfers     golfer.Repository
	tournaments tournament.Repository
	lineups     lineup.Repository
	results     result.Repository
	dispatches  jobdispatch.Repository
}

// NewHTTPServer wires repositories, usecases and the HTTP router into a
// ready-to-run server. An empty DB_URL selects seeded in-memory storage so
// the API runs without any infrastructure.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	standingsSvc := usecase.NewStandingsService(repos.leagues, repos.teams)
	settlementSvc := usecase.NewSettlementService(
		repos.tournaments,
		repos.results,
		repos.lineups,
		repos.teams,
		repos.leagues,
		standingsSvc,
	)
	resettleSvc := usecase.NewResettleService(repos.tournaments, settlementSvc)

	idGen := idgen.NewRandomGenerator()
	leagueSvc := usecase.NewLeagueService(repos.leagues, standingsSvc, idGen)
	teamSvc := usecase.NewTeamService(repos.teams, repos.leagues, idGen)
	lineupSvc := usecase.NewLineupService(repos.lineups, repos.teams, repos.tournaments, repos.golfers, idGen)

	var tournamentCache *cache.Store
	if cfg.CacheEnabled {
		tournamentCache = cache.NewStore(cfg.CacheTTL)
	}
	tournamentSvc := usecase.NewTournamentService(repos.tournaments, repos.golfers, tournamentCache)

	orchestrator := usecase.NewJobOrchestratorService(
		repos.tournaments,
		buildJobQueue(cfg, logger),
		repos.dispatches,
		usecase.JobOrchestratorConfig{
			DedupWindow:           cfg.JobDedupWindow,
			MaxConcurrentDispatch: cfg.JobMaxConcurrentDispatch,
		},
		logger,
	)

	resultSvc := usecase.NewResultService(repos.results, repos.tournaments, repos.lineups, orchestrator, logger)

	handler := httpapi.NewHandler(
		leagueSvc,
		teamSvc,
		lineupSvc,
		tournamentSvc,
		resultSvc,
		settlementSvc,
		orchestrator,
		resettleSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	if cfg.DBURL == "" {
		logger.InfoContext(ctx, "storage: in-memory with seed data")
		return repositories{
			leagues:     memory.NewLeagueRepository(memory.SeedLeagues()),
			teams:       memory.NewTeamRepository(nil),
			golfers:     memory.NewGolferRepository(memory.SeedGolfers()),
			tournaments: memory.NewTournamentRepository(memory.SeedTournaments()),
			lineups:     memory.NewLineupRepository(),
			results:     memory.NewResultRepository(),
			dispatches:  memory.NewJobDispatchRepository(),
		}, nil
	}

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return repositories{}, err
	}
	logger.InfoContext(ctx, "storage: postgres", "db_name", dbNameFromURL(cfg.DBURL))

	if err := postgres.BootstrapSeed(ctx, db); err != nil {
		return repositories{}, err
	}

	return repositories{
		leagues:     postgres.NewLeagueRepository(db),
		teams:       postgres.NewTeamRepository(db),
		golfers:     postgres.NewGolferRepository(db),
		tournaments: postgres.NewTournamentRepository(db),
		lineups:     postgres.NewLineupRepository(db),
		results:     postgres.NewResultRepository(db),
		dispatches:  postgres.NewJobDispatchRepository(db),
	}, nil
}

func buildJobQueue(cfg config.Config, logger *logging.Logger) usecase.JobQueue {
	if !cfg.QStashEnabled {
		return usecase.NewNoopJobQueue()
	}

	return jobqueue.NewQStashPublisher(jobqueue.QStashPublisherConfig{
		BaseURL:          cfg.QStashBaseURL,
		Token:            cfg.QStashToken,
		TargetBaseURL:    cfg.QStashTargetBaseURL,
		Retries:          cfg.QStashRetries,
		InternalJobToken: cfg.InternalJobToken,
		CircuitBreaker: resilience.NormalizeCircuitBreakerConfig(resilience.CircuitBreakerConfig{
			Enabled:          cfg.QStashCircuitEnabled,
			FailureThreshold: cfg.QStashCircuitFailureCount,
			OpenTimeout:      cfg.QStashCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.QStashCircuitHalfOpenMaxReq,
		}),
	}, logger)
}
