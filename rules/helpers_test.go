package rules

import (
	"testing"

	"github.com/nstehr/foundry/model"
)

type factoryRow struct {
	owner, bots, production int
}

type link struct {
	a, b, d int
}

// newBoard builds a game state from factory rows (indexed by id) and links.
func newBoard(t *testing.T, rows []factoryRow, links []link) *model.GameState {
	t.Helper()
	gs := model.NewGameState(len(rows))
	for _, l := range links {
		if err := gs.Link(l.a, l.b, l.d); err != nil {
			t.Fatalf("Link(%d, %d, %d): %v", l.a, l.b, l.d, err)
		}
	}
	for id, r := range rows {
		if err := gs.ApplyFactory(id, r.owner, r.bots, r.production); err != nil {
			t.Fatalf("ApplyFactory(%d): %v", id, err)
		}
	}
	return gs
}

func defaultEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewDoctrineEngine(DefaultDoctrine())
	if err != nil {
		t.Fatalf("NewDoctrineEngine: %v", err)
	}
	return e
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
