package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/Keegs21/Bunkered/internal/platform/logging"
	"github.com/Keegs21/Bunkered/internal/usecase"
)

type Handler struct {
	leagueService     *usecase.LeagueService
	teamService       *usecase.TeamService
	lineupService     *usecase.LineupService
	tournamentService *usecase.TournamentService
	resultService     *usecase.ResultService
	settlementService *usecase.SettlementService
	jobOrchestrator   *usecase.JobOrchestratorService
	resettleService   *usecase.ResettleService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	teamService *usecase.TeamService,
	lineupService *usecase.LineupService,
	tournamentService *usecase.TournamentService,
	resultService *usecase.ResultService,
	settlementService *usecase.SettlementService,
	jobOrchestrator *usecase.JobOrchestratorService,
	resettleService *usecase.ResettleService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:     leagueService,
		teamService:       teamService,
		lineupService:     lineupService,
		tournamentService: tournamentService,
		resultService:     resultService,
		settlementService: settlementService,
		jobOrchestrator:   jobOrchestrator,
		resettleService:   resettleService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeBody rejects unknown fields so typos in payload keys fail loudly.
func decodeBody(r *http.Request, target any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// decodeOptionalBody tolerates an empty body, for job routes where every
// field has a default.
func decodeOptionalBody(r *http.Request, target any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
