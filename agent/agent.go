package agent

import (
	"io"

	"github.com/rs/zerolog/log"

	"github.com/nstehr/foundry/model"
	"github.com/nstehr/foundry/rules"
)

// Agent owns the decision-making for a single game.
type Agent struct {
	Engine *rules.Engine
	Board  io.Writer // optional per-turn board dump
	prev   *stateSnapshot
}

func New(engine *rules.Engine) *Agent {
	return &Agent{Engine: engine}
}

// Decide computes the orders for one turn. It reads nothing but gs and the
// engine, so the same board always yields the same orders.
func Decide(gs *model.GameState, engine *rules.Engine) (targets []int, moves []model.Move) {
	targets = rules.SelectTargets(gs, engine.Doctrine().BorderLimit)
	return targets, rules.Allocate(gs, targets, engine)
}

// HandleTurn is the ipc.TurnHandler for the game loop.
func (a *Agent) HandleTurn(gs *model.GameState) []model.Move {
	for _, e := range detectEvents(gs, a.prev) {
		log.Info().Str("kind", string(e.Kind)).Int("turn", e.Turn).Int("factory", e.Factory).Msg(e.Detail)
	}
	snap := takeSnapshot(gs)
	a.prev = &snap

	targets, moves := Decide(gs, a.Engine)

	log.Debug().
		Int("turn", gs.Turn).
		Int("owned", snap.ownedCount).
		Ints("targets", targets).
		Int("orders", len(moves)).
		Msg("turn decided")

	if a.Board != nil {
		if err := writeBoard(a.Board, gs, targets); err != nil {
			log.Warn().Err(err).Msg("board dump failed")
		}
	}
	return moves
}
