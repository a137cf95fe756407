package httpapi

import (
	"net/http"
	"strings"

	"github.com/Keegs21/Bunkered/internal/domain/golfer"
	"github.com/Keegs21/Bunkered/internal/domain/result"
	"github.com/Keegs21/Bunkered/internal/domain/tournament"
)

type tournamentDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Season      int     `json:"season"`
	StartAt     string  `json:"startAt"`
	EndAt       string  `json:"endAt"`
	CourseName  string  `json:"courseName"`
	Purse       float64 `json:"purse"`
	FieldSize   int     `json:"fieldSize"`
	IsCompleted bool    `json:"isCompleted"`
}

type golferDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Country      string `json:"country"`
	WorldRanking int    `json:"worldRanking"`
}

type resultDTO struct {
	TournamentID string  `json:"tournamentId"`
	GolferID     string  `json:"golferId"`
	Position     *int    `json:"position"`
	Score        int     `json:"score"`
	PrizeMoney   float64 `json:"prizeMoney"`
	MadeCut      bool    `json:"madeCut"`
	RoundsPlayed int     `json:"roundsPlayed"`
}

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournaments")
	defer span.End()

	tournaments, err := h.tournamentService.ListTournaments(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list tournaments failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]tournamentDTO, 0, len(tournaments))
	for _, t := range tournaments {
		items = append(items, tournamentToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTournament")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))
	item, err := h.tournamentService.GetTournament(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get tournament failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentToDTO(item))
}

func (h *Handler) ListGolfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGolfers")
	defer span.End()

	golfers, err := h.tournamentService.ListGolfers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list golfers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]golferDTO, 0, len(golfers))
	for _, g := range golfers {
		items = append(items, golferToDTO(g))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTournamentResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournamentResults")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))
	results, err := h.resultService.ListResults(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list tournament results failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]resultDTO, 0, len(results))
	for _, row := range results {
		items = append(items, resultToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func tournamentToDTO(t tournament.Tournament) tournamentDTO {
	return tournamentDTO{
		ID:          t.ID,
		Name:        t.Name,
		Season:      t.Season,
		StartAt:     formatTime(t.StartAt),
		EndAt:       formatTime(t.EndAt),
		CourseName:  t.CourseName,
		Purse:       t.Purse,
		FieldSize:   t.FieldSize,
		IsCompleted: t.IsCompleted,
	}
}

func golferToDTO(g golfer.Golfer) golferDTO {
	return golferDTO{
		ID:           g.ID,
		Name:         g.Name,
		Country:      g.Country,
		WorldRanking: g.WorldRanking,
	}
}

func resultToDTO(row result.TournamentResult) resultDTO {
	return resultDTO{
		TournamentID: row.TournamentID,
		GolferID:     row.GolferID,
		Position:     row.Position,
		Score:        row.Score,
		PrizeMoney:   row.PrizeMoney,
		MadeCut:      row.MadeCut,
		RoundsPlayed: row.RoundsPlayed,
	}
}
