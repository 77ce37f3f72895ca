package ipc

import (
	"fmt"

	"github.com/nstehr/foundry/model"
)

// Entity kinds understood on the turn feed. Anything else (BOMB, ...) is
// skipped.
const (
	KindFactory = "FACTORY"
	KindTroop   = "TROOP"
)

// Link is one startup edge between two factories.
type Link struct {
	A        int
	B        int
	Distance int
}

// Setup is the one-off graph description read before the first turn.
type Setup struct {
	FactoryCount int
	Links        []Link
}

// Build creates the game state and its symmetric distance matrix.
func (s Setup) Build() (*model.GameState, error) {
	gs := model.NewGameState(s.FactoryCount)
	for i, l := range s.Links {
		if err := gs.Link(l.A, l.B, l.Distance); err != nil {
			return nil, fmt.Errorf("link %d: %w", i, err)
		}
	}
	return gs, nil
}

// Entity is one parsed turn record. Args keeps the numeric fields after the
// id in wire order.
type Entity struct {
	ID   int
	Kind string
	Args []int
}

// argCount is the number of numeric fields each known kind needs.
var argCount = map[string]int{
	KindFactory: 3, // owner bots production
	KindTroop:   5, // owner src dst bots turns
}
