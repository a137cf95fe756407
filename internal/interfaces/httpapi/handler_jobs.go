package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Keegs21/Bunkered/internal/usecase"
)

type settleTournamentJobRequest struct {
	TournamentID string `json:"tournament_id" validate:"required"`
	DispatchID   string `json:"dispatch_id"`
}

type settlementSweepJobRequest struct {
	TournamentID string `json:"tournament_id"`
}

type resettleSeasonJobRequest struct {
	Season     int `json:"season" validate:"required,min=2000,max=2100"`
	MaxWorkers int `json:"max_workers" validate:"min=0,max=16"`
}

// RunSettleTournamentJob is the queue callback: QStash delivers the payload
// EnqueueSettlement published. The dispatch audit row is closed out here.
func (h *Handler) RunSettleTournamentJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSettleTournamentJob")
	defer span.End()

	var req settleTournamentJobRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	tournamentID := strings.TrimSpace(req.TournamentID)
	summary, err := h.settlementService.SettleTournament(ctx, tournamentID)
	if h.jobOrchestrator != nil {
		h.jobOrchestrator.MarkDispatchOutcome(ctx, strings.TrimSpace(req.DispatchID), tournamentID, err)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "settle tournament job failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summary)
}

func (h *Handler) RunSettlementSweepJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSettlementSweepJob")
	defer span.End()

	if h.jobOrchestrator == nil {
		writeError(ctx, w, fmt.Errorf("%w: job orchestrator is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req settlementSweepJobRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	sweep, err := h.jobOrchestrator.RunSettlementSweep(ctx, usecase.SettlementSweepInput{
		TournamentID: strings.TrimSpace(req.TournamentID),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "settlement sweep job failed", "tournament_id", req.TournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sweep)
}

func (h *Handler) RunResettleSeasonJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunResettleSeasonJob")
	defer span.End()

	if h.resettleService == nil {
		writeError(ctx, w, fmt.Errorf("%w: resettle service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req resettleSeasonJobRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	replay, err := h.resettleService.ResettleSeason(ctx, usecase.ResettleInput{
		Season:     req.Season,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "resettle season job failed", "season", req.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, replay)
}
