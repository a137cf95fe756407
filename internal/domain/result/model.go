package result

import "fmt"

// TournamentResult is one golfer's final line for one tournament. At most one
// row exists per (tournament, golfer); ingestion upserts, never appends.
type TournamentResult struct {
	TournamentID string
	GolferID     string
	// Position is the final finishing position, 1 for the winner. Nil when
	// the golfer withdrew or the feed carried no finish.
	Position     *int
	Score        int
	PrizeMoney   float64
	MadeCut      bool
	RoundsPlayed int
}

func (r TournamentResult) Validate() error {
	if r.TournamentID == "" {
		return fmt.Errorf("result tournament id is required")
	}
	if r.GolferID == "" {
		return fmt.Errorf("result golfer id is required")
	}
	if r.Position != nil && *r.Position < 1 {
		return fmt.Errorf("result position must be >= 1")
	}

	return nil
}
