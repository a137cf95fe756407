package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Keegs21/Bunkered/internal/domain/lineup"
	"github.com/Keegs21/Bunkered/internal/usecase"
)

type submitLineupRequest struct {
	Picks []lineupPickPayload `json:"picks" validate:"required,len=3,dive"`
}

type lineupPickPayload struct {
	GolferID string   `json:"golferId" validate:"required"`
	Odds     *float64 `json:"odds" validate:"omitempty,gt=1"`
}

type lineupDTO struct {
	ID           string          `json:"id"`
	TeamID       string          `json:"teamId"`
	TournamentID string          `json:"tournamentId"`
	Slots        []lineupSlotDTO `json:"slots"`
	TotalPoints  float64         `json:"totalPoints"`
	IsLocked     bool            `json:"isLocked"`
	CreatedAt    string          `json:"createdAt"`
	UpdatedAt    string          `json:"updatedAt"`
}

type lineupSlotDTO struct {
	GolferID string   `json:"golferId"`
	Odds     *float64 `json:"odds,omitempty"`
	Points   float64  `json:"points"`
}

func (h *Handler) SubmitLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitLineup")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))
	userID := requestUserID(r)

	var req submitLineupRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if len(req.Picks) != lineup.SlotCount {
		writeError(ctx, w, fmt.Errorf("%w: exactly %d picks are required", usecase.ErrInvalidInput, lineup.SlotCount))
		return
	}

	var picks [lineup.SlotCount]usecase.LineupPick
	for i, p := range req.Picks {
		picks[i] = usecase.LineupPick{GolferID: strings.TrimSpace(p.GolferID), Odds: p.Odds}
	}

	item, err := h.lineupService.SubmitLineup(ctx, userID, leagueID, tournamentID, picks)
	if err != nil {
		h.logger.WarnContext(ctx, "submit lineup failed",
			"league_id", leagueID,
			"tournament_id", tournamentID,
			"user_id", userID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupToDTO(item))
}

func (h *Handler) GetLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLineup")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))
	userID := requestUserID(r)

	item, err := h.lineupService.GetLineup(ctx, userID, leagueID, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get lineup failed",
			"league_id", leagueID,
			"tournament_id", tournamentID,
			"user_id", userID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupToDTO(item))
}

func (h *Handler) ListTeamLineups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamLineups")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	lineups, err := h.lineupService.ListTeamLineups(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team lineups failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]lineupDTO, 0, len(lineups))
	for _, l := range lineups {
		items = append(items, lineupToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func lineupToDTO(l lineup.Lineup) lineupDTO {
	slots := make([]lineupSlotDTO, 0, lineup.SlotCount)
	for _, slot := range l.Slots {
		slots = append(slots, lineupSlotDTO{
			GolferID: slot.GolferID,
			Odds:     slot.Odds,
			Points:   slot.Points,
		})
	}

	return lineupDTO{
		ID:           l.ID,
		TeamID:       l.TeamID,
		TournamentID: l.TournamentID,
		Slots:        slots,
		TotalPoints:  l.TotalPoints,
		IsLocked:     l.IsLocked,
		CreatedAt:    formatTime(l.CreatedAt),
		UpdatedAt:    formatTime(l.UpdatedAt),
	}
}
