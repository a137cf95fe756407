package memory

import (
	"time"

	"github.com/Keegs21/Bunkered/internal/domain/golfer"
	"github.com/Keegs21/Bunkered/internal/domain/league"
	"github.com/Keegs21/Bunkered/internal/domain/tournament"
)

const (
	LeagueIDClubhouse = "clubhouse-classic-2026"

	TournamentIDPebble  = "att-pebble-beach-2026"
	TournamentIDPlayers = "the-players-2026"
	TournamentIDMasters = "the-masters-2026"
)

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:          LeagueIDClubhouse,
			Name:        "Clubhouse Classic",
			SeasonYear:  2026,
			Description: "Season-long demo league",
			MaxMembers:  20,
			Status:      league.StatusOpen,
			Scoring:     league.DefaultScoringConfig(),
			CreatedAt:   time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}

func SeedTournaments() []tournament.Tournament {
	return []tournament.Tournament{
		{
			ID:         TournamentIDPebble,
			Name:       "AT&T Pebble Beach Pro-Am",
			Season:     2026,
			StartAt:    time.Date(2026, 1, 29, 15, 0, 0, 0, time.UTC),
			EndAt:      time.Date(2026, 2, 1, 23, 0, 0, 0, time.UTC),
			CourseName: "Pebble Beach Golf Links",
			Purse:      20_000_000,
			FieldSize:  80,
			CreatedAt:  time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         TournamentIDPlayers,
			Name:       "The Players Championship",
			Season:     2026,
			StartAt:    time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC),
			EndAt:      time.Date(2026, 3, 15, 23, 0, 0, 0, time.UTC),
			CourseName: "TPC Sawgrass",
			Purse:      25_000_000,
			FieldSize:  144,
			CreatedAt:  time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         TournamentIDMasters,
			Name:       "The Masters",
			Season:     2026,
			StartAt:    time.Date(2026, 4, 9, 12, 0, 0, 0, time.UTC),
			EndAt:      time.Date(2026, 4, 12, 23, 0, 0, 0, time.UTC),
			CourseName: "Augusta National Golf Club",
			Purse:      21_000_000,
			FieldSize:  90,
			CreatedAt:  time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}

func SeedGolfers() []golfer.Golfer {
	return []golfer.Golfer{
		{ID: "g-scheffler", Name: "Scottie Scheffler", Country: "US", WorldRanking: 1},
		{ID: "g-mcilroy", Name: "Rory McIlroy", Country: "NI", WorldRanking: 2},
		{ID: "g-schauffele", Name: "Xander Schauffele", Country: "US", WorldRanking: 3},
		{ID: "g-morikawa", Name: "Collin Morikawa", Country: "US", WorldRanking: 4},
		{ID: "g-aberg", Name: "Ludvig Aberg", Country: "SE", WorldRanking: 5},
		{ID: "g-hovland", Name: "Viktor Hovland", Country: "NO", WorldRanking: 6},
		{ID: "g-cantlay", Name: "Patrick Cantlay", Country: "US", WorldRanking: 7},
		{ID: "g-matsuyama", Name: "Hideki Matsuyama", Country: "JP", WorldRanking: 8},
		{ID: "g-fleetwood", Name: "Tommy Fleetwood", Country: "GB", WorldRanking: 9},
		{ID: "g-thomas", Name: "Justin Thomas", Country: "US", WorldRanking: 10},
		{ID: "g-burns", Name: "Sam Burns", Country: "US", WorldRanking: 11},
		{ID: "g-im", Name: "Sungjae Im", Country: "KR", WorldRanking: 12},
	}
}
