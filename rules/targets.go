package rules

import (
	"slices"

	"github.com/nstehr/foundry/model"
)

// SelectTargets returns the sorted, duplicate-free ids worth evaluating
// this turn.
//
// Every owned factory defines a border radius of borderLimit times the
// distance to its nearest neighbor; productive factories strictly inside
// that radius are candidates, so dense regions get a tight border and
// sparse ones a loose one. When no owned factory has such a neighbor every
// productive factory on the board is a candidate instead. Owned factories
// are always included.
func SelectTargets(gs *model.GameState, borderLimit int) []int {
	var targets []int

	for _, f := range gs.Factories {
		if !f.Mine() {
			continue
		}
		nearest, ok := gs.Distances.Nearest(f.ID)
		if !ok {
			continue
		}
		radius := nearest * borderLimit
		for _, other := range gs.Factories {
			d, ok := gs.Distance(f.ID, other.ID)
			if ok && d < radius && other.IsInteresting() {
				targets = append(targets, other.ID)
			}
		}
	}

	// Nothing on the border, usually the opening turns.
	if len(targets) == 0 {
		for _, f := range gs.Factories {
			if f.IsInteresting() {
				targets = append(targets, f.ID)
			}
		}
	}

	targets = append(targets, gs.Owned()...)

	slices.Sort(targets)
	return slices.Compact(targets)
}
