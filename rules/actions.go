package rules

import (
	"github.com/rs/zerolog/log"

	"github.com/nstehr/foundry/model"
)

// ActionHold emits nothing for the target.
func ActionHold(env Env) (model.Move, bool) {
	return model.Move{}, false
}

// ActionCapture sends the doctrine's order size from the closest owned
// factory to the target.
func ActionCapture(env Env) (model.Move, bool) {
	n := env.Sendable()
	if !env.Sourced || n <= 0 {
		return model.Move{}, false
	}
	log.Debug().
		Int("src", env.Source.ID).
		Int("dst", env.Target.ID).
		Int("bots", n).
		Int("distance", env.Dist).
		Msg("capture order")
	return model.Move{Src: env.Source.ID, Dst: env.Target.ID, Bots: n}, true
}
