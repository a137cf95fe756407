package httpapi

import (
	"net/http"
	"strings"

	"github.com/Keegs21/Bunkered/internal/domain/team"
)

type registerTeamRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type teamDTO struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	LeagueID    string  `json:"leagueId"`
	Name        string  `json:"name"`
	TotalPoints float64 `json:"totalPoints"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func (h *Handler) RegisterTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterTeam")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	userID := requestUserID(r)

	var req registerTeamRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.teamService.RegisterTeam(ctx, userID, leagueID, strings.TrimSpace(req.Name))
	if err != nil {
		h.logger.WarnContext(ctx, "register team failed", "league_id", leagueID, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(created))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	item, err := h.teamService.GetTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) ListMyTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyTeams")
	defer span.End()

	userID := requestUserID(r)
	teams, err := h.teamService.ListUserTeams(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "list user teams failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:          t.ID,
		UserID:      t.UserID,
		LeagueID:    t.LeagueID,
		Name:        t.Name,
		TotalPoints: t.TotalPoints,
		CreatedAt:   formatTime(t.CreatedAt),
		UpdatedAt:   formatTime(t.UpdatedAt),
	}
}
