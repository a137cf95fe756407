package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/Keegs21/Bunkered/internal/domain/league"
	"github.com/Keegs21/Bunkered/internal/domain/team"
	leaguemock "github.com/Keegs21/Bunkered/internal/mocks/domain/league"
	teammock "github.com/Keegs21/Bunkered/internal/mocks/domain/team"
)

func TestTeamService_RegisterTeam_RepoErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewTeamService(teamRepo, leagueRepo, &seqIDGenerator{prefix: "team"})

	leagueRepo.
		On("GetMembership", mock.Anything, "league-1", "user-1").
		Return(league.Membership{ID: "m-1", LeagueID: "league-1", UserID: "user-1"}, true, nil).
		Once()
	teamRepo.
		On("GetByUserAndLeague", mock.Anything, "user-1", "league-1").
		Return(team.Team{}, false, nil).
		Once()
	teamRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(item team.Team) bool {
			return item.UserID == "user-1" && item.LeagueID == "league-1"
		})).
		Return(errors.New("connection reset")).
		Once()

	_, err := service.RegisterTeam(ctx, "user-1", "league-1", "Fairway Finders")
	if err == nil || !strings.Contains(err.Error(), "create team") {
		t.Fatalf("expected wrapped create error, got %v", err)
	}
}

func TestTeamService_ListUserTeams_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo, leaguemock.NewRepository(t), &seqIDGenerator{prefix: "team"})

	expected := []team.Team{
		{ID: "team-1", UserID: "user-1", LeagueID: "league-1", Name: "Fairway Finders"},
		{ID: "team-2", UserID: "user-1", LeagueID: "league-2", Name: "Mulligan Men"},
	}
	teamRepo.
		On("ListByUser", mock.Anything, "user-1").
		Return(expected, nil).
		Once()

	got, err := service.ListUserTeams(ctx, "user-1")
	if err != nil {
		t.Fatalf("list user teams: %v", err)
	}
	if len(got) != len(expected) {
		t.Fatalf("unexpected team count: got=%d want=%d", len(got), len(expected))
	}
	if got[0].ID != expected[0].ID || got[1].LeagueID != expected[1].LeagueID {
		t.Fatalf("unexpected teams: %+v", got)
	}
}
