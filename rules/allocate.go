package rules

import (
	"github.com/rs/zerolog/log"

	"github.com/nstehr/foundry/model"
)

// Allocate makes one greedy pass over targets and returns the orders in
// target order. Each target is decided on its own; the only state shared
// between decisions is how many bots each source has already committed.
func Allocate(gs *model.GameState, targets []int, engine *Engine) []model.Move {
	committed := make(map[int]int)
	var moves []model.Move

	for _, t := range targets {
		if t < 0 || t >= len(gs.Factories) {
			continue
		}
		env := newEnv(gs, t, committed, engine.Doctrine())
		for _, m := range engine.Evaluate(env) {
			if !legal(gs, m, committed) {
				log.Warn().Int("src", m.Src).Int("dst", m.Dst).Int("bots", m.Bots).Msg("dropping illegal order")
				continue
			}
			committed[m.Src] += m.Bots
			moves = append(moves, m)
		}
	}
	return moves
}

// legal guards the invariants no rule may break: an owned, reachable source
// with the bots to spare, a non-owned destination and a positive count.
func legal(gs *model.GameState, m model.Move, committed map[int]int) bool {
	if m.Bots <= 0 || m.Src < 0 || m.Src >= len(gs.Factories) || m.Dst < 0 || m.Dst >= len(gs.Factories) {
		return false
	}
	src, dst := gs.Factories[m.Src], gs.Factories[m.Dst]
	if !src.Mine() || dst.Mine() {
		return false
	}
	if _, ok := gs.Distance(m.Src, m.Dst); !ok {
		return false
	}
	return m.Bots <= src.Bots-committed[m.Src]
}
