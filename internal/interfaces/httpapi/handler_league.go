package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/Keegs21/Bunkered/internal/domain/league"
	"github.com/Keegs21/Bunkered/internal/usecase"
)

type createLeagueRequest struct {
	Name        string                `json:"name" validate:"required,max=100"`
	SeasonYear  int                   `json:"seasonYear" validate:"required,min=2000,max=2100"`
	Description string                `json:"description" validate:"max=500"`
	MaxMembers  int                   `json:"maxMembers" validate:"min=0,max=1000"`
	Scoring     *scoringConfigPayload `json:"scoring"`
}

type scoringConfigPayload struct {
	WinBonus     float64 `json:"winBonus" validate:"min=0"`
	Top5Bonus    float64 `json:"top5Bonus" validate:"min=0"`
	Top10Bonus   float64 `json:"top10Bonus" validate:"min=0"`
	MadeCutBonus float64 `json:"madeCutBonus" validate:"min=0"`
	OddsWeight   float64 `json:"oddsWeight" validate:"min=0,max=1"`
}

type leagueDTO struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	SeasonYear  int                  `json:"seasonYear"`
	Description string               `json:"description,omitempty"`
	MaxMembers  int                  `json:"maxMembers"`
	Status      string               `json:"status"`
	Scoring     scoringConfigPayload `json:"scoring"`
	CreatedAt   string               `json:"createdAt"`
}

type membershipDTO struct {
	ID          string  `json:"id"`
	LeagueID    string  `json:"leagueId"`
	UserID      string  `json:"userId"`
	TotalPoints float64 `json:"totalPoints"`
	Position    int     `json:"position"`
	JoinedAt    string  `json:"joinedAt"`
}

type standingDTO struct {
	Position     int     `json:"position"`
	MembershipID string  `json:"membershipId"`
	UserID       string  `json:"userId"`
	TeamID       string  `json:"teamId,omitempty"`
	TeamName     string  `json:"teamName,omitempty"`
	TotalPoints  float64 `json:"totalPoints"`
}

func (h *Handler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLeague")
	defer span.End()

	var req createLeagueRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item := league.League{
		Name:        strings.TrimSpace(req.Name),
		SeasonYear:  req.SeasonYear,
		Description: strings.TrimSpace(req.Description),
		MaxMembers:  req.MaxMembers,
	}
	if req.Scoring != nil {
		item.Scoring = league.ScoringConfig{
			WinBonus:     req.Scoring.WinBonus,
			Top5Bonus:    req.Scoring.Top5Bonus,
			Top10Bonus:   req.Scoring.Top10Bonus,
			MadeCutBonus: req.Scoring.MadeCutBonus,
			OddsWeight:   req.Scoring.OddsWeight,
		}
	}

	userID := requestUserID(r)
	created, err := h.leagueService.CreateLeague(ctx, userID, item)
	if err != nil {
		h.logger.WarnContext(ctx, "create league failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, leagueToDTO(created))
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	item, err := h.leagueService.GetLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
}

func (h *Handler) JoinLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.JoinLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	userID := requestUserID(r)

	membership, err := h.leagueService.JoinLeague(ctx, leagueID, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "join league failed", "league_id", leagueID, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, membershipToDTO(membership))
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	standings, err := h.leagueService.Leaderboard(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get leaderboard failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingDTO, 0, len(standings))
	for _, s := range standings {
		items = append(items, standingToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func leagueToDTO(l league.League) leagueDTO {
	return leagueDTO{
		ID:          l.ID,
		Name:        l.Name,
		SeasonYear:  l.SeasonYear,
		Description: l.Description,
		MaxMembers:  l.MaxMembers,
		Status:      string(l.Status),
		Scoring: scoringConfigPayload{
			WinBonus:     l.Scoring.WinBonus,
			Top5Bonus:    l.Scoring.Top5Bonus,
			Top10Bonus:   l.Scoring.Top10Bonus,
			MadeCutBonus: l.Scoring.MadeCutBonus,
			OddsWeight:   l.Scoring.OddsWeight,
		},
		CreatedAt: formatTime(l.CreatedAt),
	}
}

func membershipToDTO(m league.Membership) membershipDTO {
	return membershipDTO{
		ID:          m.ID,
		LeagueID:    m.LeagueID,
		UserID:      m.UserID,
		TotalPoints: m.TotalPoints,
		Position:    m.Position,
		JoinedAt:    formatTime(m.JoinedAt),
	}
}

func standingToDTO(s usecase.Standing) standingDTO {
	return standingDTO{
		Position:     s.Position,
		MembershipID: s.MembershipID,
		UserID:       s.UserID,
		TeamID:       s.TeamID,
		TeamName:     s.TeamName,
		TotalPoints:  s.TotalPoints,
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
