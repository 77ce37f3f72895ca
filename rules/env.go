package rules

import "github.com/nstehr/foundry/model"

// Env is the view of one allocation decision, exposing helper methods
// callable from expr conditions.
type Env struct {
	State    *model.GameState
	Target   model.Factory
	Source   model.Factory // closest reachable owned factory, valid if Sourced
	Sourced  bool
	Dist     int // source → target travel time, valid if Sourced
	Budget   int // source bots left after this turn's earlier orders
	Doctrine Doctrine
}

// newEnv resolves the source for target and deducts what has already been
// committed from it this turn.
func newEnv(gs *model.GameState, target int, committed map[int]int, d Doctrine) Env {
	env := Env{State: gs, Target: gs.Factories[target], Doctrine: d}
	src, ok := gs.ClosestOwnedTo(target)
	if !ok {
		return env
	}
	dist, ok := gs.Distance(src, target)
	if !ok {
		return env
	}
	env.Source = gs.Factories[src]
	env.Sourced = true
	env.Dist = dist
	env.Budget = env.Source.Bots - committed[src]
	return env
}

func (e Env) TargetOwned() bool { return e.Target.Mine() }

func (e Env) TargetBots() int { return e.Target.Bots }

func (e Env) HasSource() bool { return e.Sourced }

// Distance is the travel time from the chosen source, 0 without a source.
func (e Env) Distance() int {
	if !e.Sourced {
		return 0
	}
	return e.Dist
}

// Available is what the source can still spend this turn.
func (e Env) Available() int {
	if !e.Sourced || e.Budget < 0 {
		return 0
	}
	return e.Budget
}

func (e Env) FriendlyInbound() int { return e.State.IncomingBots(e.Target.ID, true) }

func (e Env) HostileInbound() int { return e.State.IncomingBots(e.Target.ID, false) }

// Sendable is the order size the doctrine allows from the source, 0 when
// the source cannot afford one. Whatever stays behind must cover at least
// the source's own production.
func (e Env) Sendable() int {
	avail := e.Available()
	if avail <= 0 {
		return 0
	}
	switch e.Doctrine.Dispatch {
	case DispatchHalve:
		n := avail / 2
		if n <= 0 || avail-n < e.Source.Production {
			return 0
		}
		return n
	default:
		n := e.Doctrine.DispatchSize
		if n <= 0 || avail-n < max(e.Doctrine.Reserve, e.Source.Production) {
			return 0
		}
		return n
	}
}
