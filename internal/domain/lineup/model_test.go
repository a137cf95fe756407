package lineup

import (
	"strings"
	"testing"
)

func validLineup() Lineup {
	return Lineup{
		ID:           "lineup-1",
		TeamID:       "team-1",
		TournamentID: "tournament-1",
		Slots: [SlotCount]Slot{
			{GolferID: "g-1"},
			{GolferID: "g-2"},
			{GolferID: "g-3"},
		},
	}
}

func TestLineupValidate(t *testing.T) {
	if err := validLineup().Validate(); err != nil {
		t.Fatalf("valid lineup rejected: %v", err)
	}

	t.Run("missing slot golfer", func(t *testing.T) {
		item := validLineup()
		item.Slots[1].GolferID = ""
		err := item.Validate()
		if err == nil || !strings.Contains(err.Error(), "slot 2") {
			t.Fatalf("expected slot 2 error, got %v", err)
		}
	})

	t.Run("duplicate golfer", func(t *testing.T) {
		item := validLineup()
		item.Slots[2].GolferID = "g-1"
		err := item.Validate()
		if err == nil || !strings.Contains(err.Error(), "duplicate") {
			t.Fatalf("expected duplicate error, got %v", err)
		}
	})

	t.Run("missing ids", func(t *testing.T) {
		item := validLineup()
		item.TeamID = ""
		if err := item.Validate(); err == nil {
			t.Fatal("expected team id error")
		}
	})
}

func TestLineupGolferIDs(t *testing.T) {
	got := validLineup().GolferIDs()
	want := []string{"g-1", "g-2", "g-3"}
	if len(got) != len(want) {
		t.Fatalf("unexpected length: %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %s want %s", i, got[i], want[i])
		}
	}
}
