package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("POST /v1/leagues", handler.CreateLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("POST /v1/leagues/{leagueID}/join", handler.JoinLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/leaderboard", handler.GetLeaderboard)

	mux.HandleFunc("POST /v1/leagues/{leagueID}/teams", handler.RegisterTeam)
	mux.HandleFunc("GET /v1/teams/me", handler.ListMyTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/lineups", handler.ListTeamLineups)

	mux.HandleFunc("PUT /v1/leagues/{leagueID}/tournaments/{tournamentID}/lineup", handler.SubmitLineup)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/tournaments/{tournamentID}/lineup", handler.GetLineup)

	mux.HandleFunc("GET /v1/tournaments", handler.ListTournaments)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}", handler.GetTournament)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/results", handler.ListTournamentResults)
	mux.HandleFunc("GET /v1/golfers", handler.ListGolfers)
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/ingestion/results", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestResults)))
	mux.Handle("POST /v1/internal/jobs/settle-tournament", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSettleTournamentJob)))
	mux.Handle("POST /v1/internal/jobs/settlement-sweep", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSettlementSweepJob)))
	mux.Handle("POST /v1/internal/jobs/resettle-season", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunResettleSeasonJob)))
}
