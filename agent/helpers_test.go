package agent

import (
	"testing"

	"github.com/nstehr/foundry/model"
)

func mustLink(t *testing.T, gs *model.GameState, a, b, d int) {
	t.Helper()
	if err := gs.Link(a, b, d); err != nil {
		t.Fatalf("Link(%d, %d, %d): %v", a, b, d, err)
	}
}

func mustFactory(t *testing.T, gs *model.GameState, id, owner, bots, production int) {
	t.Helper()
	if err := gs.ApplyFactory(id, owner, bots, production); err != nil {
		t.Fatalf("ApplyFactory(%d): %v", id, err)
	}
}

func mustTroop(t *testing.T, gs *model.GameState, dst int, tr model.Troop) {
	t.Helper()
	if err := gs.AddTroop(dst, tr); err != nil {
		t.Fatalf("AddTroop(%d): %v", dst, err)
	}
}
