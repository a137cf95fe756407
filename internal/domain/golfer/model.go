package golfer

import "fmt"

// Golfer is a professional golfer available for lineup picks.
type Golfer struct {
	ID           string
	Name         string
	Country      string
	WorldRanking int
}

func (g Golfer) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("golfer id is required")
	}
	if g.Name == "" {
		return fmt.Errorf("golfer name is required")
	}

	return nil
}
