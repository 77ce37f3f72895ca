package agent

import (
	"fmt"

	"github.com/nstehr/foundry/model"
)

// EventKind identifies a change between two consecutive turns worth
// reporting. Events are only logged; they never feed back into orders.
type EventKind string

const (
	EventFactoryCaptured EventKind = "factory_captured"
	EventFactoryLost     EventKind = "factory_lost"
	EventUnderAttack     EventKind = "under_attack"
	EventEliminated      EventKind = "eliminated"
)

// Event represents a significant change detected by diffing consecutive
// turn states.
type Event struct {
	Kind    EventKind
	Turn    int
	Factory int
	Detail  string // human-readable description
}

// stateSnapshot captures the diffable fields of one turn.
type stateSnapshot struct {
	turn       int
	owned      map[int]bool
	ownedCount int
}

// takeSnapshot captures the current ownership for next turn's comparison.
func takeSnapshot(gs *model.GameState) stateSnapshot {
	snap := stateSnapshot{turn: gs.Turn, owned: make(map[int]bool)}
	for _, f := range gs.Factories {
		if f.Mine() {
			snap.owned[f.ID] = true
			snap.ownedCount++
		}
	}
	return snap
}

// detectEvents diffs gs against the previous snapshot. Returns nil on the
// first turn.
func detectEvents(gs *model.GameState, prev *stateSnapshot) []Event {
	if prev == nil {
		return nil
	}
	var events []Event

	for _, f := range gs.Factories {
		was := prev.owned[f.ID]
		switch {
		case f.Mine() && !was:
			events = append(events, Event{
				Kind:    EventFactoryCaptured,
				Turn:    gs.Turn,
				Factory: f.ID,
				Detail:  fmt.Sprintf("factory %d captured (production %d)", f.ID, f.Production),
			})
		case !f.Mine() && was:
			events = append(events, Event{
				Kind:    EventFactoryLost,
				Turn:    gs.Turn,
				Factory: f.ID,
				Detail:  fmt.Sprintf("factory %d lost to owner %d", f.ID, f.Owner),
			})
		}

		if !f.Mine() {
			continue
		}
		hostile := gs.IncomingBots(f.ID, false)
		defense := f.Bots + gs.IncomingBots(f.ID, true)
		if hostile > defense {
			events = append(events, Event{
				Kind:    EventUnderAttack,
				Turn:    gs.Turn,
				Factory: f.ID,
				Detail:  fmt.Sprintf("factory %d: %d hostile inbound vs %d defending", f.ID, hostile, defense),
			})
		}
	}

	if prev.ownedCount > 0 && len(gs.Owned()) == 0 {
		events = append(events, Event{
			Kind:    EventEliminated,
			Turn:    gs.Turn,
			Factory: -1,
			Detail:  "no factories left",
		})
	}
	return events
}
