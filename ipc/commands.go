package ipc

import (
	"fmt"
	"strings"

	"github.com/nstehr/foundry/model"
)

// Directive keywords written back to the game.
const (
	CmdMove = "MOVE"
	CmdWait = "WAIT"
)

// EncodeOrders renders a turn's orders as one output line. The game needs
// an action every turn, so no orders becomes WAIT.
func EncodeOrders(moves []model.Move) string {
	if len(moves) == 0 {
		return CmdWait
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = fmt.Sprintf("%s %d %d %d", CmdMove, m.Src, m.Dst, m.Bots)
	}
	return strings.Join(parts, ";")
}
