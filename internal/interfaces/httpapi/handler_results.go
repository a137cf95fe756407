package httpapi

import (
	"net/http"
	"strings"

	"github.com/Keegs21/Bunkered/internal/domain/result"
	"github.com/Keegs21/Bunkered/internal/usecase"
)

type ingestResultsRequest struct {
	TournamentID string                `json:"tournamentId" validate:"required"`
	Final        bool                  `json:"final"`
	Results      []ingestResultPayload `json:"results" validate:"required,min=1,dive"`
}

type ingestResultPayload struct {
	GolferID     string  `json:"golferId" validate:"required"`
	Position     *int    `json:"position" validate:"omitempty,min=1"`
	Score        int     `json:"score"`
	PrizeMoney   float64 `json:"prizeMoney" validate:"min=0"`
	MadeCut      bool    `json:"madeCut"`
	RoundsPlayed int     `json:"roundsPlayed" validate:"min=0,max=4"`
}

func (h *Handler) IngestResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestResults")
	defer span.End()

	var req ingestResultsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	tournamentID := strings.TrimSpace(req.TournamentID)
	rows := make([]result.TournamentResult, 0, len(req.Results))
	for _, row := range req.Results {
		rows = append(rows, result.TournamentResult{
			TournamentID: tournamentID,
			GolferID:     strings.TrimSpace(row.GolferID),
			Position:     row.Position,
			Score:        row.Score,
			PrizeMoney:   row.PrizeMoney,
			MadeCut:      row.MadeCut,
			RoundsPlayed: row.RoundsPlayed,
		})
	}

	summary, err := h.resultService.IngestResults(ctx, usecase.IngestResultsInput{
		TournamentID: tournamentID,
		Rows:         rows,
		Final:        req.Final,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "ingest results failed",
			"tournament_id", tournamentID,
			"final", req.Final,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summary)
}
