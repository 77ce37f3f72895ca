package model

import "fmt"

// GameState is the full board: the static graph plus the per-turn factory
// attributes. The number of factories is fixed at construction.
type GameState struct {
	Turn      int
	Factories []Factory
	Distances DistanceMatrix
}

// Factory is a capturable production site. ID never changes; everything
// else is overwritten from the turn feed.
type Factory struct {
	ID         int
	Owner      int // 0 neutral, >0 us, <0 opponent
	Bots       int
	Production int
	Incoming   []Troop
}

// Troop is an in-flight movement toward the factory holding it. Only valid
// for the turn it was read in.
type Troop struct {
	Owner int
	Bots  int
	Turns int
}

// Move is an order to send Bots from Src to Dst.
type Move struct {
	Src  int
	Dst  int
	Bots int
}

// IsInteresting reports whether the factory produces anything worth holding.
func (f Factory) IsInteresting() bool { return f.Production > 0 }

// Mine reports whether the acting player owns the factory.
func (f Factory) Mine() bool { return f.Owner > 0 }

func NewGameState(count int) *GameState {
	gs := &GameState{
		Factories: make([]Factory, count),
		Distances: NewDistanceMatrix(count),
	}
	for i := range gs.Factories {
		gs.Factories[i].ID = i
	}
	return gs
}

// Link adds a symmetric edge to the distance matrix.
func (gs *GameState) Link(a, b, distance int) error {
	return gs.Distances.Link(a, b, distance)
}

// Distance returns the travel time between a and b, ok=false if unreachable.
func (gs *GameState) Distance(a, b int) (int, bool) {
	return gs.Distances.At(a, b)
}

// Reset wipes every per-turn attribute so nothing leaks from the previous
// turn, then advances the turn counter.
func (gs *GameState) Reset() {
	for i := range gs.Factories {
		f := &gs.Factories[i]
		f.Owner = 0
		f.Bots = 0
		f.Production = 0
		f.Incoming = f.Incoming[:0]
	}
	gs.Turn++
}

// ApplyFactory overwrites a factory's turn attributes.
func (gs *GameState) ApplyFactory(id, owner, bots, production int) error {
	if !gs.valid(id) {
		return fmt.Errorf("factory %d: %w", id, ErrUnknownFactory)
	}
	f := &gs.Factories[id]
	f.Owner = owner
	f.Bots = bots
	f.Production = production
	return nil
}

// AddTroop records a troop heading for dst.
func (gs *GameState) AddTroop(dst int, t Troop) error {
	if !gs.valid(dst) {
		return fmt.Errorf("troop destination %d: %w", dst, ErrUnknownFactory)
	}
	gs.Factories[dst].Incoming = append(gs.Factories[dst].Incoming, t)
	return nil
}

// Owned returns the ids of every factory we hold, ascending.
func (gs *GameState) Owned() []int {
	var out []int
	for _, f := range gs.Factories {
		if f.Mine() {
			out = append(out, f.ID)
		}
	}
	return out
}

// ClosestOwnedTo returns the owned factory nearest to target. Owned
// factories with no route to target are never returned; ties go to the
// lowest id.
func (gs *GameState) ClosestOwnedTo(target int) (int, bool) {
	best, bestDist, found := 0, 0, false
	for _, f := range gs.Factories {
		if !f.Mine() {
			continue
		}
		d, ok := gs.Distance(f.ID, target)
		if !ok {
			continue
		}
		if !found || d < bestDist {
			best, bestDist, found = f.ID, d, true
		}
	}
	return best, found
}

// IncomingBots sums the troops heading for id, either ours (mine=true) or
// everyone else's.
func (gs *GameState) IncomingBots(id int, mine bool) int {
	if !gs.valid(id) {
		return 0
	}
	n := 0
	for _, t := range gs.Factories[id].Incoming {
		if (t.Owner > 0) == mine {
			n += t.Bots
		}
	}
	return n
}

func (gs *GameState) valid(id int) bool {
	return id >= 0 && id < len(gs.Factories)
}
